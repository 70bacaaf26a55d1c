package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

// InvestmentInput is the payload of POST and PUT /investimentos.
type InvestmentInput struct {
	Name                 string          `json:"name"                 validate:"required,max=100"`
	Type                 string          `json:"type"                 validate:"required,max=50"`
	BaseValue            decimal.Decimal `json:"baseValue"            validate:"gt=0"`
	ExpectedYieldPercent decimal.Decimal `json:"expectedYieldPercent" validate:"gte=0,lte=100"`
	RiskLevel            string          `json:"riskLevel"            validate:"required,risklevel"`
	Description          string          `json:"description"          validate:"max=500"`
	// IsActive is only read on update.
	IsActive *bool `json:"isActive,omitempty"`
}

// InvestmentService defines use-case operations for the catalog.
type InvestmentService interface {
	List(ctx context.Context, caller domain.Caller) ([]*domain.Investment, error)
	Get(ctx context.Context, caller domain.Caller, id string) (*domain.Investment, error)
	Create(ctx context.Context, caller domain.Caller, in InvestmentInput) (*domain.Investment, error)
	Update(ctx context.Context, caller domain.Caller, id string, in InvestmentInput) (*domain.Investment, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
}
