package mongo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

func TestDecimal128PreservesValue(t *testing.T) {
	for _, s := range []string{"0", "5000.00", "9.80", "0.000001", "123456789.123456789"} {
		d := decimal.RequireFromString(s)
		enc, err := toDecimal128(d)
		if err != nil {
			t.Fatalf("encode %s: %v", s, err)
		}
		dec, err := fromDecimal128(enc)
		if err != nil {
			t.Fatalf("decode %s: %v", s, err)
		}
		if !dec.Equal(d) {
			t.Fatalf("expected %s, got %s", d, dec)
		}
	}
}

func TestHoldingDocMapping(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	h := &domain.Holding{
		ID:             "h1",
		UserID:         "u1",
		InvestmentID:   "i1",
		AmountInvested: decimal.RequireFromString("1000.50"),
		Units:          decimal.RequireFromString("10"),
		PurchaseDate:   now,
		CurrentValue:   decimal.RequireFromString("1100"),
		Status:         domain.HoldingActive,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	doc, err := toHoldingDoc(h)
	if err != nil {
		t.Fatalf("toHoldingDoc: %v", err)
	}
	back, err := doc.toDomain()
	if err != nil {
		t.Fatalf("toDomain: %v", err)
	}
	if back.UserID != "u1" || back.Status != domain.HoldingActive || !back.AmountInvested.Equal(h.AmountInvested) {
		t.Fatalf("unexpected mapping: %+v", back)
	}
}

func TestHoldingDocBSONRoundTripKeepsNormalisedTimes(t *testing.T) {
	now := domain.Timestamp(time.Date(2025, 1, 2, 3, 4, 5, 690483011, time.UTC))
	purchased := domain.Timestamp(time.Date(2024, 6, 1, 0, 0, 0, 123456789, time.UTC))
	h := &domain.Holding{
		ID:             "h1",
		UserID:         "u1",
		InvestmentID:   "i1",
		AmountInvested: decimal.RequireFromString("1000.50"),
		Units:          decimal.RequireFromString("10"),
		PurchaseDate:   purchased,
		CurrentValue:   decimal.RequireFromString("1100"),
		Status:         domain.HoldingActive,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	doc, err := toHoldingDoc(h)
	if err != nil {
		t.Fatalf("toHoldingDoc: %v", err)
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var stored holdingDoc
	if err := bson.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	back, err := stored.toDomain()
	if err != nil {
		t.Fatalf("toDomain: %v", err)
	}

	if !back.PurchaseDate.Equal(h.PurchaseDate) {
		t.Fatalf("purchase date: wrote %s, read %s", h.PurchaseDate, back.PurchaseDate)
	}
	if !back.CreatedAt.Equal(h.CreatedAt) || !back.UpdatedAt.Equal(h.UpdatedAt) {
		t.Fatalf("audit times: wrote %s, read %s", h.CreatedAt, back.CreatedAt)
	}
}

func TestAccountDocRejectsUnknownRole(t *testing.T) {
	doc := accountDoc{ID: "a1", Role: "Root"}
	if _, err := doc.toDomain(); err == nil {
		t.Fatal("expected error for unknown role")
	}
}
