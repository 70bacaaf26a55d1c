package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/investment-app/portfolio-api/internal/api/metrics"
	"github.com/investment-app/portfolio-api/internal/core/domain"
	"github.com/investment-app/portfolio-api/internal/core/ports"
)

const callerKey = "caller"

// TokenExtractor pulls the caller identity token out of a request. An empty
// result means no identity was presented.
type TokenExtractor func(c echo.Context) string

// HeaderToken reads the token from a plain header, e.g. "userId".
func HeaderToken(name string) TokenExtractor {
	return func(c echo.Context) string {
		return strings.TrimSpace(c.Request().Header.Get(name))
	}
}

// BearerToken reads "Authorization: Bearer <token>". A malformed header is
// passed through so that the resolver rejects it.
func BearerToken() TokenExtractor {
	return func(c echo.Context) string {
		header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
		if header == "" {
			return ""
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return header
	}
}

// Identity resolves the caller of every request and stores it in the context.
// Requests without a token continue as anonymous; the policy decides later
// whether that is enough.
func Identity(resolver ports.IdentityResolver, extract TokenExtractor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, err := resolver.Resolve(c.Request().Context(), extract(c))
			if err != nil {
				if errors.Is(err, domain.ErrIdentityNotFound) {
					metrics.IdentityResolutionsTotal.WithLabelValues("unknown").Inc()
				} else {
					metrics.IdentityResolutionsTotal.WithLabelValues("error").Inc()
				}
				return err
			}

			if caller.Anonymous() {
				metrics.IdentityResolutionsTotal.WithLabelValues("anonymous").Inc()
			} else {
				metrics.IdentityResolutionsTotal.WithLabelValues("resolved").Inc()
			}

			c.Set(callerKey, caller)
			return next(c)
		}
	}
}

// CallerFrom returns the caller stored by Identity, or the anonymous caller.
func CallerFrom(c echo.Context) domain.Caller {
	caller, _ := c.Get(callerKey).(domain.Caller)
	return caller
}
