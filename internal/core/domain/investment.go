package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RiskLevel classifies a catalog entry.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Baixo"
	RiskMedium RiskLevel = "Médio"
	RiskHigh   RiskLevel = "Alto"
)

// Valid reports whether r is one of the declared risk levels.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Investment is an entry of the product catalog.
type Investment struct {
	ID                   string
	Name                 string
	Type                 string
	BaseValue            decimal.Decimal
	ExpectedYieldPercent decimal.Decimal
	RiskLevel            RiskLevel
	Description          string
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
