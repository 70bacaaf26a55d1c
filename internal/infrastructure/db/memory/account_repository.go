package memory

import (
	"context"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

type AccountRepository struct {
	store *Store
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) Create(_ context.Context, a *domain.Account) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emailIndex[a.Email]; taken {
		return domain.ErrEmailTaken
	}
	if _, taken := s.taxIDIndex[a.TaxID]; taken {
		return domain.ErrTaxIDTaken
	}

	clone := *a
	s.accounts[a.ID] = &clone
	s.accountOrder = append(s.accountOrder, a.ID)
	s.emailIndex[a.Email] = a.ID
	s.taxIDIndex[a.TaxID] = a.ID
	return nil
}

func (r *AccountRepository) FindByID(_ context.Context, id string) (*domain.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *AccountRepository) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emailIndex[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *s.accounts[id]
	return &clone, nil
}

func (r *AccountRepository) List(_ context.Context) ([]*domain.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Account, 0, len(s.accountOrder))
	for _, id := range s.accountOrder {
		clone := *s.accounts[id]
		out = append(out, &clone)
	}
	return out, nil
}

// Update replaces the stored account, keeping the email and cpf indexes in sync.
func (r *AccountRepository) Update(_ context.Context, a *domain.Account) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.accounts[a.ID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if owner, taken := s.emailIndex[a.Email]; taken && owner != a.ID {
		return domain.ErrEmailTaken
	}
	if owner, taken := s.taxIDIndex[a.TaxID]; taken && owner != a.ID {
		return domain.ErrTaxIDTaken
	}

	delete(s.emailIndex, current.Email)
	delete(s.taxIDIndex, current.TaxID)
	s.emailIndex[a.Email] = a.ID
	s.taxIDIndex[a.TaxID] = a.ID

	clone := *a
	s.accounts[a.ID] = &clone
	return nil
}

func (r *AccountRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.accounts)), nil
}
