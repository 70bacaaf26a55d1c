package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/investment-app/portfolio-api/internal/api/metrics"
	"github.com/investment-app/portfolio-api/internal/core/ports"
)

// AccountHandler handles HTTP requests for /users.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Register handles POST /users.
//
// @Summary      Register an account
// @Description  Self-registration always yields role User; an Admin caller may set the role.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  header    string                     false  "Caller account id"
// @Param        body    body      ports.RegisterAccountInput  true   "Account details"
// @Success      201     {object}  accountResponse
// @Failure      400     {object}  errorResponse
// @Failure      409     {object}  errorResponse
// @Router       /users [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req ports.RegisterAccountInput
	if err := bind(c, &req); err != nil {
		return err
	}

	acc, err := h.service.Register(c.Request().Context(), callerOf(c), req)
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("account", "create").Inc()
	return c.JSON(http.StatusCreated, toAccountResponse(acc))
}

// List handles GET /users.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Param        userId  header    string  true  "Caller account id (Admin)"
// @Success      200     {array}   accountResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /users [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.service.List(c.Request().Context(), callerOf(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponses(accounts))
}

// Get handles GET /users/:id.
//
// @Summary      Get an account
// @Tags         users
// @Produce      json
// @Param        userId  header    string  true  "Caller account id (owner or Admin)"
// @Param        id      path      string  true  "Account id"
// @Success      200     {object}  accountResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	acc, err := h.service.Get(c.Request().Context(), callerOf(c), pathID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(acc))
}

// Update handles PUT /users/:id.
//
// @Summary      Update an account profile
// @Description  cpf, senha and role are not changed by this endpoint.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  header    string                    true  "Caller account id (owner or Admin)"
// @Param        id      path      string                    true  "Account id"
// @Param        body    body      ports.UpdateAccountInput  true  "Profile fields"
// @Success      200     {object}  accountResponse
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      409     {object}  errorResponse
// @Router       /users/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	var req ports.UpdateAccountInput
	if err := bind(c, &req); err != nil {
		return err
	}

	acc, err := h.service.Update(c.Request().Context(), callerOf(c), pathID(c, "id"), req)
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("account", "update").Inc()
	return c.JSON(http.StatusOK, toAccountResponse(acc))
}

// Deactivate handles DELETE /users/:id.
//
// @Summary      Deactivate an account
// @Tags         users
// @Param        userId  header  string  true  "Caller account id (Admin)"
// @Param        id      path    string  true  "Account id"
// @Success      204
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *AccountHandler) Deactivate(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), callerOf(c), pathID(c, "id")); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("account", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Elevate handles PATCH /users/:id/role.
//
// @Summary      Change the role of an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  header    string                     true  "Caller account id (Admin)"
// @Param        id      path      string                     true  "Account id"
// @Param        body    body      ports.ElevateAccountInput  true  "New role"
// @Success      200     {object}  accountResponse
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{id}/role [patch]
func (h *AccountHandler) Elevate(c echo.Context) error {
	var req ports.ElevateAccountInput
	if err := bind(c, &req); err != nil {
		return err
	}

	acc, err := h.service.Elevate(c.Request().Context(), callerOf(c), pathID(c, "id"), req)
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("account", "elevate").Inc()
	return c.JSON(http.StatusOK, toAccountResponse(acc))
}
