// Package policy decides whether a caller may perform an operation.
//
// Every operation the service exposes is declared in the closed Operation set
// and bound to exactly one Requirement. Roles are matched with exhaustive
// switches over domain.Role so that adding a role forces a decision here.
package policy

import (
	"fmt"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

// Operation names one authorizable action.
type Operation uint8

const (
	AccountRegister Operation = iota + 1
	AccountList
	AccountRead
	AccountUpdate
	AccountDelete
	AccountElevate
	CatalogList
	CatalogRead
	CatalogCreate
	CatalogUpdate
	CatalogDelete
	HoldingCreate
	HoldingList
	HoldingRead
	HoldingUpdate
	HoldingDelete
)

// Requirement is the access rule bound to an operation.
type Requirement uint8

const (
	Public Requirement = iota + 1
	AdminOnly
	OwnerOrAdmin
)

var requirements = map[Operation]Requirement{
	AccountRegister: Public,
	AccountList:     AdminOnly,
	AccountRead:     OwnerOrAdmin,
	AccountUpdate:   OwnerOrAdmin,
	AccountDelete:   AdminOnly,
	AccountElevate:  AdminOnly,
	CatalogList:     Public,
	CatalogRead:     Public,
	CatalogCreate:   AdminOnly,
	CatalogUpdate:   AdminOnly,
	CatalogDelete:   AdminOnly,
	HoldingCreate:   OwnerOrAdmin,
	HoldingList:     OwnerOrAdmin,
	HoldingRead:     OwnerOrAdmin,
	HoldingUpdate:   OwnerOrAdmin,
	HoldingDelete:   OwnerOrAdmin,
}

var operationNames = map[Operation]string{
	AccountRegister: "account:register",
	AccountList:     "account:list",
	AccountRead:     "account:read",
	AccountUpdate:   "account:update",
	AccountDelete:   "account:delete",
	AccountElevate:  "account:elevate",
	CatalogList:     "catalog:list",
	CatalogRead:     "catalog:read",
	CatalogCreate:   "catalog:create",
	CatalogUpdate:   "catalog:update",
	CatalogDelete:   "catalog:delete",
	HoldingCreate:   "holding:create",
	HoldingList:     "holding:list",
	HoldingRead:     "holding:read",
	HoldingUpdate:   "holding:update",
	HoldingDelete:   "holding:delete",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d)", uint8(o))
}

// RequirementOf returns the rule bound to op. ok is false for undeclared
// operations.
func RequirementOf(op Operation) (Requirement, bool) {
	req, ok := requirements[op]
	return req, ok
}

// Authorize returns nil when caller may perform op on a resource owned by
// ownerID. ownerID is ignored for operations that are not owner scoped.
//
// Failures wrap the domain taxonomy: ErrIdentityMissing when an identity is
// required and none was presented, ErrInsufficientRole and ErrNotOwner (both
// matching ErrForbidden) otherwise.
func Authorize(caller domain.Caller, op Operation, ownerID string) error {
	req, ok := requirements[op]
	if !ok {
		return fmt.Errorf("%w: undeclared operation %s", domain.ErrForbidden, op)
	}

	switch req {
	case Public:
		return nil
	case AdminOnly:
		return requireAdmin(caller)
	case OwnerOrAdmin:
		return requireOwnerOrAdmin(caller, ownerID)
	default:
		return fmt.Errorf("%w: unknown requirement for %s", domain.ErrForbidden, op)
	}
}

func requireAdmin(caller domain.Caller) error {
	if caller.Anonymous() {
		return domain.ErrInsufficientRole
	}
	switch caller.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleUser:
		return domain.ErrInsufficientRole
	default:
		return domain.ErrInsufficientRole
	}
}

func requireOwnerOrAdmin(caller domain.Caller, ownerID string) error {
	if caller.Anonymous() {
		return domain.ErrIdentityMissing
	}
	switch caller.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleUser:
		if ownerID != "" && domain.CanonicalID(caller.AccountID) == domain.CanonicalID(ownerID) {
			return nil
		}
		return domain.ErrNotOwner
	default:
		return domain.ErrInsufficientRole
	}
}
