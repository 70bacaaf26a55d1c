package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"

	"github.com/investment-app/portfolio-api/internal/core/domain"
	"github.com/investment-app/portfolio-api/internal/core/ports"
)

// IdentityResolver resolves account ids to callers, caching active accounts
// for a short time.
type IdentityResolver struct {
	accounts ports.AccountRepository
	cache    *expirable.LRU[string, domain.Caller]
	log      zerolog.Logger
}

// NewIdentityResolver returns a resolver caching up to size identities for ttl.
func NewIdentityResolver(accounts ports.AccountRepository, size int, ttl time.Duration, log zerolog.Logger) *IdentityResolver {
	return &IdentityResolver{
		accounts: accounts,
		cache:    expirable.NewLRU[string, domain.Caller](size, nil, ttl),
		log:      log,
	}
}

// Resolve treats token as an account id. The empty token is the anonymous
// caller.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (domain.Caller, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Caller{}, nil
	}

	id, err := uuid.Parse(token)
	if err != nil {
		return domain.Caller{}, domain.ErrIdentityNotFound
	}
	key := id.String()

	if caller, ok := r.cache.Get(key); ok {
		return caller, nil
	}

	acc, err := r.accounts.FindByID(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Caller{}, domain.ErrIdentityNotFound
		}
		return domain.Caller{}, fmt.Errorf("resolve identity: %w", err)
	}
	if !acc.IsActive {
		return domain.Caller{}, domain.ErrIdentityNotFound
	}

	caller := domain.CallerFor(acc)
	r.cache.Add(key, caller)
	return caller, nil
}

// Evict drops a cached identity so the next Resolve reads the store.
func (r *IdentityResolver) Evict(accountID string) {
	if r.cache.Remove(accountID) {
		r.log.Debug().Str("account_id", accountID).Msg("identity evicted")
	}
}
