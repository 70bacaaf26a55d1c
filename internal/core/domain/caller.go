package domain

// Caller is the resolved identity behind a request. The zero value is an
// anonymous caller.
type Caller struct {
	AccountID string
	Role      Role
}

// Anonymous reports whether no identity was presented.
func (c Caller) Anonymous() bool {
	return c.AccountID == ""
}

// CallerFor builds the caller for a resolved account.
func CallerFor(a *Account) Caller {
	if a == nil {
		return Caller{}
	}
	return Caller{AccountID: a.ID, Role: a.Role}
}
