package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investment-app/portfolio-api/internal/core/domain"
	"github.com/investment-app/portfolio-api/internal/core/ports"
	"github.com/investment-app/portfolio-api/internal/core/validation"
	"github.com/investment-app/portfolio-api/internal/infrastructure/db/memory"
)

func holdingInput(investmentID string) ports.CreateHoldingInput {
	return ports.CreateHoldingInput{
		InvestmentID:   investmentID,
		AmountInvested: decimal.RequireFromString("1000.00"),
		Units:          decimal.RequireFromString("10"),
		PurchaseDate:   "2024-02-15",
		CurrentValue:   decimal.RequireFromString("1040.50"),
		Status:         "Ativo",
	}
}

func updateInput(status string) ports.UpdateHoldingInput {
	return ports.UpdateHoldingInput{
		AmountInvested: decimal.RequireFromString("1000.00"),
		Units:          decimal.RequireFromString("10"),
		PurchaseDate:   "2024-02-15",
		CurrentValue:   decimal.RequireFromString("1040.50"),
		Status:         status,
	}
}

func TestHoldingService_Create_ByOwner(t *testing.T) {
	f := newFixture(t)
	ana := f.register(t, "Ana", "ana@example.com", "11122233344")
	inv := f.catalogEntry(t, "LCI")

	h, err := f.holdings.Create(context.Background(), domain.CallerFor(ana), ana.ID, holdingInput(inv.ID))
	require.NoError(t, err)

	assert.Equal(t, ana.ID, h.UserID)
	assert.Equal(t, inv.ID, h.InvestmentID)
	assert.Equal(t, domain.HoldingActive, h.Status)
	assert.True(t, h.IsActive)

	events := f.store.Events()
	require.Len(t, events, 1)
	assert.Equal(t, h.ID, events[0].HoldingID)
	assert.Empty(t, events[0].FromStatus)
	assert.Equal(t, domain.HoldingActive, events[0].ToStatus)
	assert.Equal(t, ana.ID, events[0].ActorID)
}

func TestHoldingService_Create_UnresolvedInvestmentIsAFieldError(t *testing.T) {
	f := newFixture(t)
	ana := f.register(t, "Ana", "ana@example.com", "11122233344")
	in := holdingInput("6f1c1c4e-5b7e-4d43-9a59-0d6a3c1f0e11")
	in.AmountInvested = decimal.Zero

	_, err := f.holdings.Create(context.Background(), domain.CallerFor(ana), ana.ID, in)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "must reference an existing investment", ve.Fields["investmentId"])
	assert.Contains(t, ve.Fields, "amountInvested")

	list, err := f.holdings.List(context.Background(), domain.CallerFor(ana), ana.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHoldingService_Create_InactiveInvestmentIsAFieldError(t *testing.T) {
	f := newFixture(t)
	ana := f.register(t, "Ana", "ana@example.com", "11122233344")
	inv := f.catalogEntry(t, "LCI")
	require.NoError(t, f.investments.Delete(context.Background(), admin, inv.ID))

	_, err := f.holdings.Create(context.Background(), domain.CallerFor(ana), ana.ID, holdingInput(inv.ID))
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "investmentId")
}

func TestHoldingService_CrossOwnerIsDenied(t *testing.T) {
	f := newFixture(t)
	ana := f.register(t, "Ana", "ana@example.com", "11122233344")
	bob := f.register(t, "Bob", "bob@example.com", "22233344455")
	inv := f.catalogEntry(t, "LCI")
	ctx := context.Background()

	_, err := f.holdings.Create(ctx, domain.CallerFor(bob), ana.ID, holdingInput(inv.ID))
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = f.holdings.List(ctx, domain.CallerFor(bob), ana.ID)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = f.holdings.Create(ctx, domain.Caller{}, ana.ID, holdingInput(inv.ID))
	assert.ErrorIs(t, err, domain.ErrIdentityMissing)

	list, err := f.holdings.List(ctx, admin, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHoldingService_Get_ForeignHoldingReadsAsNotFound(t *testing.T) {
	f := newFixture(t)
	ana := f.register(t, "Ana", "ana@example.com", "11122233344")
	bob := f.register(t, "Bob", "bob@example.com", "22233344455")
	inv := f.catalogEntry(t, "LCI")
	ctx := context.Background()

	anas, err := f.holdings.Create(ctx, domain.CallerFor(ana), ana.ID, holdingInput(inv.ID))
	require.NoError(t, err)

	_, err = f.holdings.Get(ctx, domain.CallerFor(bob), bob.ID, anas.ID)
	assert.ErrorIs(t, err, domain.ErrHoldingNotFound)

	got, err := f.holdings.Get(ctx, admin, ana.ID, anas.ID)
	require.NoError(t, err)
	assert.Equal(t, anas.ID, got.ID)
}

func TestHoldingService_Update_StatusTransitions(t *testing.T) {
	f := newFixture(t)
	ana := f.register(t, "Ana", "ana@example.com", "11122233344")
	inv := f.catalogEntry(t, "LCI")
	caller := domain.CallerFor(ana)
	ctx := context.Background()

	h, err := f.holdings.Create(ctx, caller, ana.ID, holdingInput(inv.ID))
	require.NoError(t, err)

	// Identical payload: nothing written, no event.
	same, err := f.holdings.Update(ctx, caller, ana.ID, h.ID, updateInput("Ativo"))
	require.NoError(t, err)
	assert.True(t, same.UpdatedAt.Equal(h.UpdatedAt))
	assert.Len(t, f.store.Events(), 1)

	closed, err := f.holdings.Update(ctx, caller, ana.ID, h.ID, updateInput("Encerrado"))
	require.NoError(t, err)
	assert.Equal(t, domain.HoldingClosed, closed.Status)
	assert.Equal(t, inv.ID, closed.InvestmentID)

	events := f.store.Events()
	require.Len(t, events, 2)
	assert.Equal(t, domain.HoldingActive, events[1].FromStatus)
	assert.Equal(t, domain.HoldingClosed, events[1].ToStatus)

	_, err = f.holdings.Update(ctx, caller, ana.ID, h.ID, updateInput("Ativo"))
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "status")

	got, err := f.holdings.Get(ctx, caller, ana.ID, h.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.HoldingClosed, got.Status)
}

func TestHoldingService_Delete_SoftAndIdempotent(t *testing.T) {
	f := newFixture(t)
	ana := f.register(t, "Ana", "ana@example.com", "11122233344")
	inv := f.catalogEntry(t, "LCI")
	caller := domain.CallerFor(ana)
	ctx := context.Background()

	h, err := f.holdings.Create(ctx, caller, ana.ID, holdingInput(inv.ID))
	require.NoError(t, err)

	require.NoError(t, f.holdings.Delete(ctx, caller, ana.ID, h.ID))
	require.NoError(t, f.holdings.Delete(ctx, caller, ana.ID, h.ID))

	list, err := f.holdings.List(ctx, caller, ana.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsActive)
	assert.Equal(t, domain.HoldingActive, list[0].Status)

	err = f.holdings.Delete(ctx, caller, ana.ID, "6f1c1c4e-5b7e-4d43-9a59-0d6a3c1f0e11")
	assert.ErrorIs(t, err, domain.ErrHoldingNotFound)
}

func TestHoldingService_InactiveOwnerReadsAsNotFound(t *testing.T) {
	f := newFixture(t)
	ana := f.register(t, "Ana", "ana@example.com", "11122233344")
	inv := f.catalogEntry(t, "LCI")
	ctx := context.Background()
	require.NoError(t, f.accounts.Deactivate(ctx, admin, ana.ID))

	_, err := f.holdings.List(ctx, admin, ana.ID)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = f.holdings.Create(ctx, admin, ana.ID, holdingInput(inv.ID))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

type failingEvents struct{}

func (failingEvents) Insert(context.Context, *domain.HoldingEvent) error {
	return errors.New("audit store down")
}

func TestHoldingService_AuditFailureDoesNotFailTheWrite(t *testing.T) {
	f := newFixture(t)
	ana := f.register(t, "Ana", "ana@example.com", "11122233344")
	inv := f.catalogEntry(t, "LCI")
	f.holdings.events = failingEvents{}

	h, err := f.holdings.Create(context.Background(), domain.CallerFor(ana), ana.ID, holdingInput(inv.ID))
	require.NoError(t, err)

	stored, err := memory.NewHoldingRepository(f.store).FindByID(context.Background(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, h.ID, stored.ID)
}

// millisecondHoldings stores holdings the way a MongoDB date field does,
// keeping only millisecond precision.
type millisecondHoldings struct {
	ports.HoldingRepository
}

func truncated(h *domain.Holding) *domain.Holding {
	cp := *h
	cp.PurchaseDate = cp.PurchaseDate.Truncate(time.Millisecond)
	cp.CreatedAt = cp.CreatedAt.Truncate(time.Millisecond)
	cp.UpdatedAt = cp.UpdatedAt.Truncate(time.Millisecond)
	return &cp
}

func (r millisecondHoldings) Create(ctx context.Context, h *domain.Holding) error {
	return r.HoldingRepository.Create(ctx, truncated(h))
}

func (r millisecondHoldings) Update(ctx context.Context, h *domain.Holding) error {
	return r.HoldingRepository.Update(ctx, truncated(h))
}

func TestHoldingService_IdenticalUpdateIsANoOpAtStoredPrecision(t *testing.T) {
	f := newFixture(t)
	accountRepo := memory.NewAccountRepository(f.store)
	investmentRepo := memory.NewInvestmentRepository(f.store)
	svc := NewHoldingService(
		millisecondHoldings{memory.NewHoldingRepository(f.store)},
		memory.NewHoldingEventRepository(f.store),
		accountRepo, investmentRepo,
		validation.New(), f.serializer, zerolog.Nop(),
	)
	ana := f.register(t, "Ana", "ana@example.com", "11122233344")
	inv := f.catalogEntry(t, "LCI")
	ctx := context.Background()
	caller := domain.CallerFor(ana)

	in := holdingInput(inv.ID)
	in.PurchaseDate = "2024-02-15T10:20:30.123456789Z"
	created, err := svc.Create(ctx, caller, ana.ID, in)
	require.NoError(t, err)

	read, err := svc.Get(ctx, caller, ana.ID, created.ID)
	require.NoError(t, err)
	assert.True(t, created.PurchaseDate.Equal(read.PurchaseDate))
	assert.True(t, created.CreatedAt.Equal(read.CreatedAt))
	assert.True(t, created.UpdatedAt.Equal(read.UpdatedAt))

	upd := updateInput("Ativo")
	upd.PurchaseDate = in.PurchaseDate
	upd.CurrentValue = decimal.RequireFromString("1100")
	first, err := svc.Update(ctx, caller, ana.ID, created.ID, upd)
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	second, err := svc.Update(ctx, caller, ana.ID, created.ID, upd)
	require.NoError(t, err)
	assert.True(t, first.UpdatedAt.Equal(second.UpdatedAt), "identical update must not bump updatedAt")
}
