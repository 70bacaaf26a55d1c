package domain

import "time"

// Account is a registered user of the service.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	TaxID        string // CPF, 11 digits
	BirthDate    time.Time
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the account holds the Admin role.
func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
