package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/investment-app/portfolio-api/internal/core/domain"
	"github.com/investment-app/portfolio-api/internal/core/policy"
	"github.com/investment-app/portfolio-api/internal/core/ports"
)

// InvestmentService manages the investment catalog.
type InvestmentService struct {
	repo       ports.InvestmentRepository
	validator  ports.Validator
	serializer ports.Serializer
	now        func() time.Time
	logger     zerolog.Logger
}

func NewInvestmentService(
	repo ports.InvestmentRepository,
	validator ports.Validator,
	serializer ports.Serializer,
	logger zerolog.Logger,
) *InvestmentService {
	return &InvestmentService{
		repo:       repo,
		validator:  validator,
		serializer: serializer,
		now:        time.Now,
		logger:     logger,
	}
}

// List returns the active catalog entries.
func (s *InvestmentService) List(ctx context.Context, caller domain.Caller) ([]*domain.Investment, error) {
	if err := policy.Authorize(caller, policy.CatalogList, ""); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, true)
}

// Get returns an active catalog entry. Soft-deleted entries read as not found.
func (s *InvestmentService) Get(ctx context.Context, caller domain.Caller, id string) (*domain.Investment, error) {
	if err := policy.Authorize(caller, policy.CatalogRead, ""); err != nil {
		return nil, err
	}

	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inv.IsActive {
		return nil, domain.ErrInvestmentNotFound
	}
	return inv, nil
}

func (s *InvestmentService) Create(ctx context.Context, caller domain.Caller, in ports.InvestmentInput) (*domain.Investment, error) {
	if err := policy.Authorize(caller, policy.CatalogCreate, ""); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	now := domain.Timestamp(s.now())
	inv := &domain.Investment{
		ID:                   uuid.NewString(),
		Name:                 in.Name,
		Type:                 in.Type,
		BaseValue:            in.BaseValue,
		ExpectedYieldPercent: in.ExpectedYieldPercent,
		RiskLevel:            domain.RiskLevel(in.RiskLevel),
		Description:          in.Description,
		IsActive:             true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		s.logger.Error().Err(err).Msg("failed to create investment")
		return nil, err
	}

	s.logger.Info().Str("investment_id", inv.ID).Str("actor_id", caller.AccountID).Msg("investment created")
	return inv, nil
}

// Update replaces the catalog entry fields. isActive, when present, can
// restore a soft-deleted entry.
func (s *InvestmentService) Update(ctx context.Context, caller domain.Caller, id string, in ports.InvestmentInput) (*domain.Investment, error) {
	if err := policy.Authorize(caller, policy.CatalogUpdate, ""); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	var result *domain.Investment
	err := s.serializer.Do(ctx, investmentKey(id), func(ctx context.Context) error {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		next := *current
		next.Name = in.Name
		next.Type = in.Type
		next.BaseValue = in.BaseValue
		next.ExpectedYieldPercent = in.ExpectedYieldPercent
		next.RiskLevel = domain.RiskLevel(in.RiskLevel)
		next.Description = in.Description
		if in.IsActive != nil {
			next.IsActive = *in.IsActive
		}

		if sameInvestment(current, &next) {
			result = current
			return nil
		}

		next.UpdatedAt = domain.Timestamp(s.now())
		if err := s.repo.Update(ctx, &next); err != nil {
			return err
		}
		result = &next
		return nil
	})
	if err != nil {
		if !expected(err) {
			s.logger.Error().Err(err).Str("investment_id", id).Msg("failed to update investment")
		}
		return nil, err
	}

	s.logger.Info().Str("investment_id", id).Str("actor_id", caller.AccountID).Msg("investment updated")
	return result, nil
}

// Delete soft-deletes a catalog entry.
func (s *InvestmentService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if err := policy.Authorize(caller, policy.CatalogDelete, ""); err != nil {
		return err
	}

	err := s.serializer.Do(ctx, investmentKey(id), func(ctx context.Context) error {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return domain.ErrInvestmentNotFound
		}

		next := *current
		next.IsActive = false
		next.UpdatedAt = domain.Timestamp(s.now())
		return s.repo.Update(ctx, &next)
	})
	if err != nil {
		if !expected(err) {
			s.logger.Error().Err(err).Str("investment_id", id).Msg("failed to delete investment")
		}
		return err
	}

	s.logger.Info().Str("investment_id", id).Str("actor_id", caller.AccountID).Msg("investment deleted")
	return nil
}

func sameInvestment(a, b *domain.Investment) bool {
	return a.Name == b.Name &&
		a.Type == b.Type &&
		a.BaseValue.Equal(b.BaseValue) &&
		a.ExpectedYieldPercent.Equal(b.ExpectedYieldPercent) &&
		a.RiskLevel == b.RiskLevel &&
		a.Description == b.Description &&
		a.IsActive == b.IsActive
}
