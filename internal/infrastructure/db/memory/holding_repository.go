package memory

import (
	"context"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

type HoldingRepository struct {
	store *Store
}

func NewHoldingRepository(store *Store) *HoldingRepository {
	return &HoldingRepository{store: store}
}

func (r *HoldingRepository) Create(_ context.Context, h *domain.Holding) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *h
	s.holdings[h.ID] = &clone
	s.holdingOrder = append(s.holdingOrder, h.ID)
	return nil
}

func (r *HoldingRepository) FindByID(_ context.Context, id string) (*domain.Holding, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.holdings[id]
	if !ok {
		return nil, domain.ErrHoldingNotFound
	}
	clone := *h
	return &clone, nil
}

func (r *HoldingRepository) ListByUser(_ context.Context, userID string) ([]*domain.Holding, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Holding, 0)
	for _, id := range s.holdingOrder {
		h := s.holdings[id]
		if h.UserID != userID {
			continue
		}
		clone := *h
		out = append(out, &clone)
	}
	return out, nil
}

func (r *HoldingRepository) Update(_ context.Context, h *domain.Holding) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.holdings[h.ID]; !ok {
		return domain.ErrHoldingNotFound
	}
	clone := *h
	s.holdings[h.ID] = &clone
	return nil
}

// HoldingEventRepository appends audit events to the Store.
type HoldingEventRepository struct {
	store *Store
}

func NewHoldingEventRepository(store *Store) *HoldingEventRepository {
	return &HoldingEventRepository{store: store}
}

func (r *HoldingEventRepository) Insert(_ context.Context, event *domain.HoldingEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events = append(r.store.events, *event)
	return nil
}
