// Package memory provides process-local repositories backed by maps. It is
// used by tests and by STORE_DRIVER=memory.
package memory

import (
	"sync"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

// Store is a thread-safe in-memory store shared by the repositories below.
// Order slices keep insertion order for listings.
type Store struct {
	mu sync.RWMutex

	accounts     map[string]*domain.Account
	accountOrder []string
	emailIndex   map[string]string // email -> account id
	taxIDIndex   map[string]string // cpf -> account id

	investments     map[string]*domain.Investment
	investmentOrder []string

	holdings     map[string]*domain.Holding
	holdingOrder []string

	events []domain.HoldingEvent
}

func NewStore() *Store {
	return &Store{
		accounts:    make(map[string]*domain.Account),
		emailIndex:  make(map[string]string),
		taxIDIndex:  make(map[string]string),
		investments: make(map[string]*domain.Investment),
		holdings:    make(map[string]*domain.Holding),
	}
}

// Events returns a copy of the holding audit trail.
func (s *Store) Events() []domain.HoldingEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.HoldingEvent, len(s.events))
	copy(out, s.events)
	return out
}
