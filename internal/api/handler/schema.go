package handler

import (
	"encoding/json"
	"time"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Response-only types owned by the transport layer.
// Money values are rendered as JSON numbers straight from their decimal text.

type accountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	TaxID     string    `json:"cpf"`
	BirthDate time.Time `json:"dataNascimento"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type investmentResponse struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name"`
	Type                 string      `json:"type"`
	BaseValue            json.Number `json:"baseValue"            swaggertype:"number"`
	ExpectedYieldPercent json.Number `json:"expectedYieldPercent" swaggertype:"number"`
	RiskLevel            string      `json:"riskLevel"`
	Description          string      `json:"description"`
	IsActive             bool        `json:"isActive"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

type holdingResponse struct {
	ID             string      `json:"id"`
	UserID         string      `json:"userId"`
	InvestmentID   string      `json:"investmentId"`
	AmountInvested json.Number `json:"amountInvested" swaggertype:"number"`
	Units          json.Number `json:"units"          swaggertype:"number"`
	PurchaseDate   time.Time   `json:"purchaseDate"`
	CurrentValue   json.Number `json:"currentValue"   swaggertype:"number"`
	Status         string      `json:"status"`
	IsActive       bool        `json:"isActive"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}
