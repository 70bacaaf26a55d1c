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

// AccountService implements account registration and administration.
type AccountService struct {
	repo       ports.AccountRepository
	validator  ports.Validator
	serializer ports.Serializer
	identities ports.IdentityCache
	now        func() time.Time
	logger     zerolog.Logger
}

func NewAccountService(
	repo ports.AccountRepository,
	validator ports.Validator,
	serializer ports.Serializer,
	identities ports.IdentityCache,
	logger zerolog.Logger,
) *AccountService {
	return &AccountService{
		repo:       repo,
		validator:  validator,
		serializer: serializer,
		identities: identities,
		now:        time.Now,
		logger:     logger,
	}
}

// Register creates an account. The requested role is honoured only for Admin
// callers; everybody else gets RoleUser.
func (s *AccountService) Register(ctx context.Context, caller domain.Caller, in ports.RegisterAccountInput) (*domain.Account, error) {
	if err := policy.Authorize(caller, policy.AccountRegister, ""); err != nil {
		return nil, err
	}
	verr := s.validator.Validate(in)
	role := domain.RoleUser
	if caller.Role == domain.RoleAdmin && in.Role != "" {
		parsed, err := domain.ParseRole(in.Role)
		if err != nil {
			verr = withFieldError(verr, "role", fmt.Sprintf("must be one of: %s, %s", domain.RoleUser, domain.RoleAdmin))
		}
		role = parsed
	}
	if verr != nil {
		return nil, verr
	}

	birth, err := validation.ParseTimestamp(in.BirthDate)
	if err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := domain.Timestamp(s.now())
	acc := &domain.Account{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		TaxID:        in.TaxID,
		BirthDate:    birth,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, acc); err != nil {
		if !expected(err) {
			s.logger.Error().Err(err).Msg("failed to create account")
		}
		return nil, err
	}

	s.logger.Info().Str("account_id", acc.ID).Str("role", acc.Role.String()).Msg("account created")
	return acc, nil
}

// List returns every account.
func (s *AccountService) List(ctx context.Context, caller domain.Caller) ([]*domain.Account, error) {
	if err := policy.Authorize(caller, policy.AccountList, ""); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Get returns one account to its owner or to an Admin.
func (s *AccountService) Get(ctx context.Context, caller domain.Caller, id string) (*domain.Account, error) {
	if err := policy.Authorize(caller, policy.AccountRead, id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Update replaces the mutable profile fields. Tax id, password and role are
// never changed here.
func (s *AccountService) Update(ctx context.Context, caller domain.Caller, id string, in ports.UpdateAccountInput) (*domain.Account, error) {
	if err := policy.Authorize(caller, policy.AccountUpdate, id); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	birth, err := validation.ParseTimestamp(in.BirthDate)
	if err != nil {
		return nil, err
	}

	var result *domain.Account
	err = s.serializer.Do(ctx, accountKey(id), func(ctx context.Context) error {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		next := *current
		next.Name = in.Name
		next.Email = in.Email
		next.BirthDate = birth
		if in.IsActive != nil {
			next.IsActive = *in.IsActive
		}

		if sameProfile(current, &next) {
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
			s.logger.Error().Err(err).Str("account_id", id).Msg("failed to update account")
		}
		return nil, err
	}

	s.identities.Evict(id)
	s.logger.Info().Str("account_id", id).Msg("account updated")
	return result, nil
}

// Deactivate soft-deletes an account. Accounts are never removed from the store.
func (s *AccountService) Deactivate(ctx context.Context, caller domain.Caller, id string) error {
	if err := policy.Authorize(caller, policy.AccountDelete, id); err != nil {
		return err
	}

	err := s.serializer.Do(ctx, accountKey(id), func(ctx context.Context) error {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return nil
		}

		next := *current
		next.IsActive = false
		next.UpdatedAt = domain.Timestamp(s.now())
		return s.repo.Update(ctx, &next)
	})
	if err != nil {
		if !expected(err) {
			s.logger.Error().Err(err).Str("account_id", id).Msg("failed to deactivate account")
		}
		return err
	}

	s.identities.Evict(id)
	s.logger.Info().Str("account_id", id).Str("actor_id", caller.AccountID).Msg("account deactivated")
	return nil
}

// Elevate changes the role of an account. Only Admins reach this path.
func (s *AccountService) Elevate(ctx context.Context, caller domain.Caller, id string, in ports.ElevateAccountInput) (*domain.Account, error) {
	if err := policy.Authorize(caller, policy.AccountElevate, id); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	var result *domain.Account
	err = s.serializer.Do(ctx, accountKey(id), func(ctx context.Context) error {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current.Role == role {
			result = current
			return nil
		}

		next := *current
		next.Role = role
		next.UpdatedAt = domain.Timestamp(s.now())
		if err := s.repo.Update(ctx, &next); err != nil {
			return err
		}
		result = &next
		return nil
	})
	if err != nil {
		if !expected(err) {
			s.logger.Error().Err(err).Str("account_id", id).Msg("failed to change role")
		}
		return nil, err
	}

	s.identities.Evict(id)
	s.logger.Info().
		Str("account_id", id).
		Str("actor_id", caller.AccountID).
		Str("role", role.String()).
		Msg("account role changed")
	return result, nil
}

// Authenticate checks an email and password pair. Every failure, including an
// inactive account, reports domain.ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	acc, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !acc.IsActive || !checkPassword(acc.PasswordHash, password) {
		s.logger.Warn().Str("account_id", acc.ID).Msg("authentication failed")
		return nil, domain.ErrInvalidCredentials
	}
	return acc, nil
}

func sameProfile(a, b *domain.Account) bool {
	return a.Name == b.Name &&
		a.Email == b.Email &&
		a.BirthDate.Equal(b.BirthDate) &&
		a.IsActive == b.IsActive
}
