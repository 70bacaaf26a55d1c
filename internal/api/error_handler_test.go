package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/investment-app/portfolio-api/internal/core/domain"
)

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrIdentityMissing, http.StatusUnauthorized},
		{domain.ErrIdentityNotFound, http.StatusUnauthorized},
		{domain.ErrInsufficientRole, http.StatusForbidden},
		{domain.ErrNotOwner, http.StatusForbidden},
		{fmt.Errorf("wrapped: %w", domain.ErrHoldingNotFound), http.StatusNotFound},
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrTaxIDTaken, http.StatusConflict},
		{echo.NewHTTPError(http.StatusBadRequest, "bad json"), http.StatusBadRequest},
		{errors.New("mongo exploded"), http.StatusInternalServerError},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler(tc.err, e.NewContext(req, rec))

		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json for %v: %v", tc.err, err)
		}
		if _, ok := body["error"].(string); !ok {
			t.Errorf("%v: missing error envelope: %s", tc.err, rec.Body.String())
		}
	}
}

func TestHTTPErrorHandler_ValidationFields(t *testing.T) {
	ve := domain.NewValidationError()
	ve.Add("baseValue", "must be greater than 0")
	ve.Add("riskLevel", "is required")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/investimentos", nil)
	rec := httptest.NewRecorder()
	NewHTTPErrorHandler(zerolog.Nop())(ve, e.NewContext(req, rec))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Error != "validation failed" || len(body.Fields) != 2 || body.Fields["baseValue"] != "must be greater than 0" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHTTPErrorHandler_InternalErrorDoesNotLeak(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	NewHTTPErrorHandler(zerolog.Nop())(errors.New("dial tcp 10.0.0.1:27017: refused"), e.NewContext(req, rec))

	if rec.Body.String() != "{\"error\":\"internal server error\"}\n" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}
