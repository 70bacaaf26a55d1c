package ports

import (
	"context"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

// RegisterAccountInput is the payload of POST /users.
type RegisterAccountInput struct {
	Name      string `json:"nome"           validate:"required,max=100"`
	Email     string `json:"email"          validate:"required,max=100,email,dotdomain"`
	Password  string `json:"senha"          validate:"required,min=8,max=255"`
	TaxID     string `json:"cpf"            validate:"required,number,len=11"`
	BirthDate string `json:"dataNascimento" validate:"required,timestamp,notfuture"`
	// Role is honoured, and therefore checked, only when the caller is an
	// Admin. Other callers may send anything; it is ignored.
	Role string `json:"role"`
}

// UpdateAccountInput is the payload of PUT /users/{id}. cpf, senha and role
// are not mutable through this path.
type UpdateAccountInput struct {
	Name      string `json:"nome"           validate:"required,max=100"`
	Email     string `json:"email"          validate:"required,max=100,email,dotdomain"`
	BirthDate string `json:"dataNascimento" validate:"required,timestamp,notfuture"`
	IsActive  *bool  `json:"isActive"`
}

// ElevateAccountInput is the payload of PATCH /users/{id}/role.
type ElevateAccountInput struct {
	Role string `json:"role" validate:"required,role"`
}

// AccountService defines use-case operations for accounts.
type AccountService interface {
	Register(ctx context.Context, caller domain.Caller, in RegisterAccountInput) (*domain.Account, error)
	List(ctx context.Context, caller domain.Caller) ([]*domain.Account, error)
	Get(ctx context.Context, caller domain.Caller, id string) (*domain.Account, error)
	Update(ctx context.Context, caller domain.Caller, id string, in UpdateAccountInput) (*domain.Account, error)
	Deactivate(ctx context.Context, caller domain.Caller, id string) error
	Elevate(ctx context.Context, caller domain.Caller, id string, in ElevateAccountInput) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
}
