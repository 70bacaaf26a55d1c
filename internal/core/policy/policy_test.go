package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

var (
	anonymous = domain.Caller{}
	alice     = domain.Caller{AccountID: "alice", Role: domain.RoleUser}
	admin     = domain.Caller{AccountID: "root", Role: domain.RoleAdmin}
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		caller  domain.Caller
		op      Operation
		owner   string
		wantErr error
	}{
		{"anonymous may register", anonymous, AccountRegister, "", nil},
		{"anonymous may list catalog", anonymous, CatalogList, "", nil},
		{"anonymous may read catalog entry", anonymous, CatalogRead, "", nil},
		{"anonymous cannot create catalog entry", anonymous, CatalogCreate, "", domain.ErrInsufficientRole},
		{"user cannot create catalog entry", alice, CatalogCreate, "", domain.ErrInsufficientRole},
		{"admin creates catalog entry", admin, CatalogCreate, "", nil},
		{"user cannot delete catalog entry", alice, CatalogDelete, "", domain.ErrInsufficientRole},
		{"user cannot list accounts", alice, AccountList, "", domain.ErrInsufficientRole},
		{"anonymous cannot list accounts", anonymous, AccountList, "", domain.ErrInsufficientRole},
		{"admin lists accounts", admin, AccountList, "", nil},
		{"user cannot elevate", alice, AccountElevate, "alice", domain.ErrInsufficientRole},
		{"user reads self", alice, AccountRead, "alice", nil},
		{"user cannot read other account", alice, AccountRead, "bob", domain.ErrNotOwner},
		{"owner creates holding", alice, HoldingCreate, "alice", nil},
		{"user cannot create holding for other", alice, HoldingCreate, "bob", domain.ErrNotOwner},
		{"admin acts for any owner", admin, HoldingUpdate, "bob", nil},
		{"anonymous needs identity for holdings", anonymous, HoldingList, "alice", domain.ErrIdentityMissing},
		{"empty owner never matches", alice, HoldingRead, "", domain.ErrNotOwner},
		{"owner deletes holding", alice, HoldingDelete, "alice", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.caller, tt.op, tt.owner)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthorize_OwnerMatchIgnoresUUIDCase(t *testing.T) {
	owner := domain.Caller{AccountID: "6f1c2b1e-8a3d-4c5e-9f10-1a2b3c4d5e6f", Role: domain.RoleUser}

	assert.NoError(t, Authorize(owner, HoldingList, "6F1C2B1E-8A3D-4C5E-9F10-1A2B3C4D5E6F"))
	assert.ErrorIs(t, Authorize(owner, HoldingList, "7f1c2b1e-8a3d-4c5e-9f10-1a2b3c4d5e6f"), domain.ErrNotOwner)
}

func TestAuthorize_DenialsMatchForbidden(t *testing.T) {
	assert.ErrorIs(t, Authorize(alice, AccountList, ""), domain.ErrForbidden)
	assert.ErrorIs(t, Authorize(alice, HoldingRead, "bob"), domain.ErrForbidden)
	assert.False(t, errors.Is(Authorize(anonymous, HoldingRead, "bob"), domain.ErrForbidden))
}

func TestAuthorize_UndeclaredOperationDenied(t *testing.T) {
	err := Authorize(admin, Operation(200), "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuthorize_UnknownRoleDenied(t *testing.T) {
	ghost := domain.Caller{AccountID: "ghost", Role: domain.Role(42)}
	assert.ErrorIs(t, Authorize(ghost, CatalogCreate, ""), domain.ErrInsufficientRole)
	assert.ErrorIs(t, Authorize(ghost, HoldingRead, "ghost"), domain.ErrInsufficientRole)
}

func TestEveryOperationHasRequirement(t *testing.T) {
	for op := AccountRegister; op <= HoldingDelete; op++ {
		_, ok := RequirementOf(op)
		assert.Truef(t, ok, "operation %s has no requirement", op)
		assert.NotContains(t, op.String(), "operation(")
	}
}
