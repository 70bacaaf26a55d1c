package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/investment-app/portfolio-api/internal/core/domain"
	"github.com/investment-app/portfolio-api/internal/core/ports"
)

// SeedOptions carries the credentials of the bootstrap Admin.
type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
}

// Seeder fills an empty store with a bootstrap Admin, a sample user and the
// sample catalog.
type Seeder struct {
	accounts    ports.AccountRepository
	investments ports.InvestmentRepository
	now         func() time.Time
	log         zerolog.Logger
}

func NewSeeder(accounts ports.AccountRepository, investments ports.InvestmentRepository, log zerolog.Logger) *Seeder {
	return &Seeder{accounts: accounts, investments: investments, now: time.Now, log: log}
}

type seedAccount struct {
	name, email, password, taxID string
	birth                        time.Time
	role                         domain.Role
}

type seedInvestment struct {
	name, kind, base, yield string
	risk                    domain.RiskLevel
	description             string
}

var sampleCatalog = []seedInvestment{
	{"Tesouro Direto - Selic 2029", "Renda Fixa", "100.00", "12.50", domain.RiskLow, "Título do Tesouro Nacional indexado à taxa Selic"},
	{"Fundo Multimercado XP", "Fundo", "50.00", "15.80", domain.RiskMedium, "Fundo de investimento multimercado com estratégia diversificada"},
	{"FII Kinea Renda Imobiliária", "Fundo Imobiliário", "150.00", "8.20", domain.RiskMedium, "Fundo de investimento imobiliário focado em imóveis comerciais"},
	{"Ações VALE3", "Ação", "75.50", "18.50", domain.RiskHigh, "Ações da Vale S.A. - Mineração e logística"},
}

// Seed populates the store when it holds no account and no catalog entry.
// It reports whether anything was written.
func (s *Seeder) Seed(ctx context.Context, opts SeedOptions) (bool, error) {
	accounts, err := s.accounts.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: count accounts: %w", err)
	}
	investments, err := s.investments.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: count investments: %w", err)
	}
	if accounts > 0 || investments > 0 {
		s.log.Info().Int64("accounts", accounts).Int64("investments", investments).Msg("store not empty, seeding skipped")
		return false, nil
	}

	now := domain.Timestamp(s.now())
	people := []seedAccount{
		{"Administrador", opts.AdminEmail, opts.AdminPassword, "12345678900", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), domain.RoleAdmin},
		{"João Silva", "joao@teste.com", "usuario123", "98765432100", time.Date(1985, 5, 15, 0, 0, 0, 0, time.UTC), domain.RoleUser},
	}
	for _, p := range people {
		hash, err := hashPassword(p.password)
		if err != nil {
			return false, fmt.Errorf("seed: hash password: %w", err)
		}
		acc := &domain.Account{
			ID:           uuid.NewString(),
			Name:         p.name,
			Email:        p.email,
			PasswordHash: hash,
			TaxID:        p.taxID,
			BirthDate:    p.birth,
			Role:         p.role,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.accounts.Create(ctx, acc); err != nil {
			return false, fmt.Errorf("seed: create account %s: %w", p.email, err)
		}
		s.log.Info().Str("account_id", acc.ID).Str("email", acc.Email).Str("role", acc.Role.String()).Msg("seeded account")
	}

	for _, item := range sampleCatalog {
		inv := &domain.Investment{
			ID:                   uuid.NewString(),
			Name:                 item.name,
			Type:                 item.kind,
			BaseValue:            decimal.RequireFromString(item.base),
			ExpectedYieldPercent: decimal.RequireFromString(item.yield),
			RiskLevel:            item.risk,
			Description:          item.description,
			IsActive:             true,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := s.investments.Create(ctx, inv); err != nil {
			return false, fmt.Errorf("seed: create investment %q: %w", item.name, err)
		}
	}

	s.log.Info().Int("investments", len(sampleCatalog)).Msg("seeded catalog")
	return true, nil
}
