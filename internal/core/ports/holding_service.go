package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

// CreateHoldingInput is the payload of POST /users/{userId}/investimentos.
type CreateHoldingInput struct {
	InvestmentID   string          `json:"investmentId"   validate:"required,uuid"`
	AmountInvested decimal.Decimal `json:"amountInvested" validate:"gt=0"`
	Units          decimal.Decimal `json:"units"          validate:"gt=0"`
	PurchaseDate   string          `json:"purchaseDate"   validate:"required,timestamp,notfuture"`
	CurrentValue   decimal.Decimal `json:"currentValue"   validate:"gte=0"`
	Status         string          `json:"status"         validate:"required,holdingstatus"`
}

// UpdateHoldingInput is the payload of PUT /users/{userId}/investimentos/{id}.
// The referenced investment and the owner cannot change.
type UpdateHoldingInput struct {
	AmountInvested decimal.Decimal `json:"amountInvested" validate:"gt=0"`
	Units          decimal.Decimal `json:"units"          validate:"gt=0"`
	PurchaseDate   string          `json:"purchaseDate"   validate:"required,timestamp,notfuture"`
	CurrentValue   decimal.Decimal `json:"currentValue"   validate:"gte=0"`
	Status         string          `json:"status"         validate:"required,holdingstatus"`
	IsActive       *bool           `json:"isActive"`
}

// HoldingService defines use-case operations for holdings. ownerID is the
// account the holding belongs to, taken from the request path.
type HoldingService interface {
	Create(ctx context.Context, caller domain.Caller, ownerID string, in CreateHoldingInput) (*domain.Holding, error)
	List(ctx context.Context, caller domain.Caller, ownerID string) ([]*domain.Holding, error)
	Get(ctx context.Context, caller domain.Caller, ownerID, id string) (*domain.Holding, error)
	Update(ctx context.Context, caller domain.Caller, ownerID, id string, in UpdateHoldingInput) (*domain.Holding, error)
	Delete(ctx context.Context, caller domain.Caller, ownerID, id string) error
}
