package memory

import (
	"context"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

type InvestmentRepository struct {
	store *Store
}

func NewInvestmentRepository(store *Store) *InvestmentRepository {
	return &InvestmentRepository{store: store}
}

func (r *InvestmentRepository) Create(_ context.Context, inv *domain.Investment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *inv
	s.investments[inv.ID] = &clone
	s.investmentOrder = append(s.investmentOrder, inv.ID)
	return nil
}

func (r *InvestmentRepository) FindByID(_ context.Context, id string) (*domain.Investment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.investments[id]
	if !ok {
		return nil, domain.ErrInvestmentNotFound
	}
	clone := *inv
	return &clone, nil
}

func (r *InvestmentRepository) List(_ context.Context, activeOnly bool) ([]*domain.Investment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Investment, 0, len(s.investmentOrder))
	for _, id := range s.investmentOrder {
		inv := s.investments[id]
		if activeOnly && !inv.IsActive {
			continue
		}
		clone := *inv
		out = append(out, &clone)
	}
	return out, nil
}

func (r *InvestmentRepository) Update(_ context.Context, inv *domain.Investment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.investments[inv.ID]; !ok {
		return domain.ErrInvestmentNotFound
	}
	clone := *inv
	s.investments[inv.ID] = &clone
	return nil
}

func (r *InvestmentRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.investments)), nil
}
