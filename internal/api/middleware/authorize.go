package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/investment-app/portfolio-api/internal/api/metrics"
	"github.com/investment-app/portfolio-api/internal/core/domain"
	"github.com/investment-app/portfolio-api/internal/core/policy"
)

// Authorize enforces the policy for op before the request body is read.
// ownerParam names the path parameter holding the owner id; it is empty for
// operations that are not owner scoped.
func Authorize(op policy.Operation, ownerParam string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			owner := ""
			if ownerParam != "" {
				owner = domain.CanonicalID(c.Param(ownerParam))
			}

			if err := policy.Authorize(CallerFrom(c), op, owner); err != nil {
				metrics.AuthorizationDenialsTotal.WithLabelValues(op.String(), denialReason(err)).Inc()
				return err
			}
			return next(c)
		}
	}
}

func denialReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrIdentityMissing):
		return "identity_missing"
	case errors.Is(err, domain.ErrNotOwner):
		return "not_owner"
	default:
		return "insufficient_role"
	}
}
