package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HoldingStatus represents the lifecycle state of a holding.
type HoldingStatus string

const (
	HoldingActive HoldingStatus = "Ativo"
	HoldingClosed HoldingStatus = "Encerrado"
)

// validTransitions defines the allowed status changes. Staying in the same
// status is always allowed.
var validTransitions = map[HoldingStatus][]HoldingStatus{
	HoldingActive: {HoldingClosed},
}

// Valid reports whether s is one of the declared statuses.
func (s HoldingStatus) Valid() bool {
	return s == HoldingActive || s == HoldingClosed
}

// CanTransitionTo reports whether a holding in status s may move to next.
func (s HoldingStatus) CanTransitionTo(next HoldingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Holding links an account to a catalog entry with the money committed.
type Holding struct {
	ID             string
	UserID         string
	InvestmentID   string
	AmountInvested decimal.Decimal
	Units          decimal.Decimal
	PurchaseDate   time.Time
	CurrentValue   decimal.Decimal
	Status         HoldingStatus
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HoldingEvent records a holding creation or status change in the audit trail.
type HoldingEvent struct {
	HoldingID  string
	UserID     string
	FromStatus HoldingStatus // empty on creation
	ToStatus   HoldingStatus
	ActorID    string
	Timestamp  time.Time
}
