package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/investment-app/portfolio-api/internal/api/middleware"
	"github.com/investment-app/portfolio-api/internal/core/domain"
)

// callerOf returns the caller resolved by the Identity middleware.
func callerOf(c echo.Context) domain.Caller {
	return middleware.CallerFrom(c)
}

// pathID reads an id path parameter in canonical form.
func pathID(c echo.Context, name string) string {
	return domain.CanonicalID(c.Param(name))
}

// bind decodes the request body into dst. Malformed JSON and type mismatches
// are reported as a plain 400; field rules are checked later by the services.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return nil
}
