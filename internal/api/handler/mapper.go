package handler

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		TaxID:     a.TaxID,
		BirthDate: a.BirthDate,
		Role:      a.Role.String(),
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toAccountResponses(in []*domain.Account) []accountResponse {
	out := make([]accountResponse, 0, len(in))
	for _, a := range in {
		out = append(out, toAccountResponse(a))
	}
	return out
}

func toInvestmentResponse(inv *domain.Investment) investmentResponse {
	return investmentResponse{
		ID:                   inv.ID,
		Name:                 inv.Name,
		Type:                 inv.Type,
		BaseValue:            number(inv.BaseValue),
		ExpectedYieldPercent: number(inv.ExpectedYieldPercent),
		RiskLevel:            string(inv.RiskLevel),
		Description:          inv.Description,
		IsActive:             inv.IsActive,
		CreatedAt:            inv.CreatedAt,
		UpdatedAt:            inv.UpdatedAt,
	}
}

func toInvestmentResponses(in []*domain.Investment) []investmentResponse {
	out := make([]investmentResponse, 0, len(in))
	for _, inv := range in {
		out = append(out, toInvestmentResponse(inv))
	}
	return out
}

func toHoldingResponse(h *domain.Holding) holdingResponse {
	return holdingResponse{
		ID:             h.ID,
		UserID:         h.UserID,
		InvestmentID:   h.InvestmentID,
		AmountInvested: number(h.AmountInvested),
		Units:          number(h.Units),
		PurchaseDate:   h.PurchaseDate,
		CurrentValue:   number(h.CurrentValue),
		Status:         string(h.Status),
		IsActive:       h.IsActive,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}

func toHoldingResponses(in []*domain.Holding) []holdingResponse {
	out := make([]holdingResponse, 0, len(in))
	for _, h := range in {
		out = append(out, toHoldingResponse(h))
	}
	return out
}
