package ports

import (
	"context"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
// Create and Update return domain.ErrEmailTaken or domain.ErrTaxIDTaken when a
// uniqueness constraint would be violated.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) error
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// List returns every account in creation order.
	List(ctx context.Context) ([]*domain.Account, error)
	Update(ctx context.Context, a *domain.Account) error
	Count(ctx context.Context) (int64, error)
}

// InvestmentRepository defines persistence operations for the catalog.
type InvestmentRepository interface {
	Create(ctx context.Context, inv *domain.Investment) error
	FindByID(ctx context.Context, id string) (*domain.Investment, error)
	// List returns catalog entries in creation order. When activeOnly is set,
	// soft-deleted entries are skipped.
	List(ctx context.Context, activeOnly bool) ([]*domain.Investment, error)
	Update(ctx context.Context, inv *domain.Investment) error
	Count(ctx context.Context) (int64, error)
}

// HoldingRepository defines persistence operations for holdings.
type HoldingRepository interface {
	Create(ctx context.Context, h *domain.Holding) error
	FindByID(ctx context.Context, id string) (*domain.Holding, error)
	// ListByUser returns the holdings of one account in creation order.
	ListByUser(ctx context.Context, userID string) ([]*domain.Holding, error)
	Update(ctx context.Context, h *domain.Holding) error
}

// HoldingEventRepository appends to the holding audit trail.
type HoldingEventRepository interface {
	Insert(ctx context.Context, event *domain.HoldingEvent) error
}
