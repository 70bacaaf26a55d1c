package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/investment-app/portfolio-api/internal/core/domain"
	"github.com/investment-app/portfolio-api/internal/core/policy"
	"github.com/investment-app/portfolio-api/internal/core/ports"
	"github.com/investment-app/portfolio-api/internal/core/validation"
)

// HoldingService manages the holdings of each account.
type HoldingService struct {
	holdings    ports.HoldingRepository
	events      ports.HoldingEventRepository
	accounts    ports.AccountRepository
	investments ports.InvestmentRepository
	validator   ports.Validator
	serializer  ports.Serializer
	now         func() time.Time
	log         zerolog.Logger
}

func NewHoldingService(
	holdings ports.HoldingRepository,
	events ports.HoldingEventRepository,
	accounts ports.AccountRepository,
	investments ports.InvestmentRepository,
	validator ports.Validator,
	serializer ports.Serializer,
	log zerolog.Logger,
) *HoldingService {
	return &HoldingService{
		holdings:    holdings,
		events:      events,
		accounts:    accounts,
		investments: investments,
		validator:   validator,
		serializer:  serializer,
		now:         time.Now,
		log:         log,
	}
}

// Create opens a holding for ownerID. An investmentId that does not resolve to
// an active catalog entry is reported together with the other field errors.
func (s *HoldingService) Create(ctx context.Context, caller domain.Caller, ownerID string, in ports.CreateHoldingInput) (*domain.Holding, error) {
	if err := policy.Authorize(caller, policy.HoldingCreate, ownerID); err != nil {
		return nil, err
	}

	in.InvestmentID = domain.CanonicalID(in.InvestmentID)
	verr := domain.NewValidationError()
	if err := s.validator.Validate(in); err != nil {
		ve, ok := asValidation(err)
		if !ok {
			return nil, err
		}
		verr.Merge(ve)
	}

	if _, invalid := verr.Fields["investmentId"]; !invalid {
		if err := s.requireActiveInvestment(ctx, in.InvestmentID); err != nil {
			if !errors.Is(err, domain.ErrInvestmentNotFound) {
				return nil, err
			}
			verr.Add("investmentId", "must reference an existing investment")
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if err := s.requireActiveOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	purchased, err := validation.ParseTimestamp(in.PurchaseDate)
	if err != nil {
		return nil, err
	}

	now := domain.Timestamp(s.now())
	h := &domain.Holding{
		ID:             uuid.NewString(),
		UserID:         ownerID,
		InvestmentID:   in.InvestmentID,
		AmountInvested: in.AmountInvested,
		Units:          in.Units,
		PurchaseDate:   purchased,
		CurrentValue:   in.CurrentValue,
		Status:         domain.HoldingStatus(in.Status),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.holdings.Create(ctx, h); err != nil {
		s.log.Error().Err(err).Str("user_id", ownerID).Msg("failed to create holding")
		return nil, err
	}

	s.audit(ctx, h, "", caller)
	s.log.Info().
		Str("holding_id", h.ID).
		Str("user_id", ownerID).
		Str("investment_id", h.InvestmentID).
		Msg("holding created")
	return h, nil
}

// List returns every holding of ownerID.
func (s *HoldingService) List(ctx context.Context, caller domain.Caller, ownerID string) ([]*domain.Holding, error) {
	if err := policy.Authorize(caller, policy.HoldingList, ownerID); err != nil {
		return nil, err
	}
	if err := s.requireActiveOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.holdings.ListByUser(ctx, ownerID)
}

// Get returns one holding of ownerID. A holding owned by somebody else reads as
// not found.
func (s *HoldingService) Get(ctx context.Context, caller domain.Caller, ownerID, id string) (*domain.Holding, error) {
	if err := policy.Authorize(caller, policy.HoldingRead, ownerID); err != nil {
		return nil, err
	}
	if err := s.requireActiveOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.findOwned(ctx, ownerID, id)
}

// Update replaces the mutable fields of a holding. The owner and the referenced
// investment never change; a closed holding cannot be reopened.
func (s *HoldingService) Update(ctx context.Context, caller domain.Caller, ownerID, id string, in ports.UpdateHoldingInput) (*domain.Holding, error) {
	if err := policy.Authorize(caller, policy.HoldingUpdate, ownerID); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}
	if err := s.requireActiveOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	purchased, err := validation.ParseTimestamp(in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	status := domain.HoldingStatus(in.Status)

	var (
		result     *domain.Holding
		fromStatus domain.HoldingStatus
	)
	err = s.serializer.Do(ctx, holdingKey(id), func(ctx context.Context) error {
		current, err := s.findOwned(ctx, ownerID, id)
		if err != nil {
			return err
		}
		if !current.Status.CanTransitionTo(status) {
			ve := domain.NewValidationError()
			ve.Add("status", fmt.Sprintf("cannot change from %s to %s", current.Status, status))
			return ve
		}

		next := *current
		next.AmountInvested = in.AmountInvested
		next.Units = in.Units
		next.PurchaseDate = purchased
		next.CurrentValue = in.CurrentValue
		next.Status = status
		if in.IsActive != nil {
			next.IsActive = *in.IsActive
		}

		if sameHolding(current, &next) {
			result = current
			return nil
		}

		next.UpdatedAt = domain.Timestamp(s.now())
		if err := s.holdings.Update(ctx, &next); err != nil {
			return err
		}
		fromStatus = current.Status
		result = &next
		return nil
	})
	if err != nil {
		if !expected(err) {
			s.log.Error().Err(err).Str("holding_id", id).Msg("failed to update holding")
		}
		return nil, err
	}

	if fromStatus != "" && fromStatus != result.Status {
		s.audit(ctx, result, fromStatus, caller)
	}
	s.log.Info().Str("holding_id", id).Str("user_id", ownerID).Msg("holding updated")
	return result, nil
}

// Delete soft-deletes a holding by clearing its active flag. The status is
// left untouched.
func (s *HoldingService) Delete(ctx context.Context, caller domain.Caller, ownerID, id string) error {
	if err := policy.Authorize(caller, policy.HoldingDelete, ownerID); err != nil {
		return err
	}
	if err := s.requireActiveOwner(ctx, ownerID); err != nil {
		return err
	}

	err := s.serializer.Do(ctx, holdingKey(id), func(ctx context.Context) error {
		current, err := s.findOwned(ctx, ownerID, id)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return nil
		}

		next := *current
		next.IsActive = false
		next.UpdatedAt = domain.Timestamp(s.now())
		return s.holdings.Update(ctx, &next)
	})
	if err != nil {
		if !expected(err) {
			s.log.Error().Err(err).Str("holding_id", id).Msg("failed to delete holding")
		}
		return err
	}

	s.log.Info().Str("holding_id", id).Str("user_id", ownerID).Msg("holding deleted")
	return nil
}

func (s *HoldingService) findOwned(ctx context.Context, ownerID, id string) (*domain.Holding, error) {
	h, err := s.holdings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h.UserID != ownerID {
		return nil, domain.ErrHoldingNotFound
	}
	return h, nil
}

func (s *HoldingService) requireActiveOwner(ctx context.Context, ownerID string) error {
	acc, err := s.accounts.FindByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if !acc.IsActive {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (s *HoldingService) requireActiveInvestment(ctx context.Context, id string) error {
	inv, err := s.investments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !inv.IsActive {
		return domain.ErrInvestmentNotFound
	}
	return nil
}

// audit appends to the holding trail. Failures are logged and swallowed.
func (s *HoldingService) audit(ctx context.Context, h *domain.Holding, from domain.HoldingStatus, caller domain.Caller) {
	event := &domain.HoldingEvent{
		HoldingID:  h.ID,
		UserID:     h.UserID,
		FromStatus: from,
		ToStatus:   h.Status,
		ActorID:    caller.AccountID,
		Timestamp:  domain.Timestamp(s.now()),
	}
	if err := s.events.Insert(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("holding_id", h.ID).Msg("failed to insert holding event")
	}
}

func sameHolding(a, b *domain.Holding) bool {
	return a.AmountInvested.Equal(b.AmountInvested) &&
		a.Units.Equal(b.Units) &&
		a.PurchaseDate.Equal(b.PurchaseDate) &&
		a.CurrentValue.Equal(b.CurrentValue) &&
		a.Status == b.Status &&
		a.IsActive == b.IsActive
}
