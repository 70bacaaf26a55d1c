package ports

import (
	"context"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

// IdentityResolver maps a caller-supplied token to a Caller. An empty token
// resolves to the anonymous caller; an unknown or inactive identity fails
// with domain.ErrIdentityNotFound.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (domain.Caller, error)
}

// IdentityCache is notified when an account changes so that stale identities
// are not served.
type IdentityCache interface {
	Evict(accountID string)
}

// Serializer runs fn exclusively with respect to every other call sharing key.
type Serializer interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Validator checks a payload and returns a *domain.ValidationError listing
// every violated field.
type Validator interface {
	Validate(i any) error
}
