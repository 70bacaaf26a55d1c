package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/investment-app/portfolio-api/internal/api/metrics"
	"github.com/investment-app/portfolio-api/internal/core/ports"
)

// InvestmentHandler handles HTTP requests for the /investimentos catalog.
type InvestmentHandler struct {
	service ports.InvestmentService
}

func NewInvestmentHandler(service ports.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{service: service}
}

// List handles GET /investimentos.
//
// @Summary      List catalog entries
// @Tags         investimentos
// @Produce      json
// @Success      200  {array}  investmentResponse
// @Router       /investimentos [get]
func (h *InvestmentHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), callerOf(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvestmentResponses(items))
}

// Get handles GET /investimentos/:id.
//
// @Summary      Get a catalog entry
// @Tags         investimentos
// @Produce      json
// @Param        id   path      string  true  "Investment id"
// @Success      200  {object}  investmentResponse
// @Failure      404  {object}  errorResponse
// @Router       /investimentos/{id} [get]
func (h *InvestmentHandler) Get(c echo.Context) error {
	inv, err := h.service.Get(c.Request().Context(), callerOf(c), pathID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvestmentResponse(inv))
}

// Create handles POST /investimentos.
//
// @Summary      Create a catalog entry
// @Tags         investimentos
// @Accept       json
// @Produce      json
// @Param        userId  header    string                 true  "Caller account id (Admin)"
// @Param        body    body      ports.InvestmentInput  true  "Catalog entry"
// @Success      201     {object}  investmentResponse
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /investimentos [post]
func (h *InvestmentHandler) Create(c echo.Context) error {
	var req ports.InvestmentInput
	if err := bind(c, &req); err != nil {
		return err
	}

	inv, err := h.service.Create(c.Request().Context(), callerOf(c), req)
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("investment", "create").Inc()
	return c.JSON(http.StatusCreated, toInvestmentResponse(inv))
}

// Update handles PUT /investimentos/:id.
//
// @Summary      Update a catalog entry
// @Tags         investimentos
// @Accept       json
// @Produce      json
// @Param        userId  header    string                 true  "Caller account id (Admin)"
// @Param        id      path      string                 true  "Investment id"
// @Param        body    body      ports.InvestmentInput  true  "Catalog entry"
// @Success      200     {object}  investmentResponse
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /investimentos/{id} [put]
func (h *InvestmentHandler) Update(c echo.Context) error {
	var req ports.InvestmentInput
	if err := bind(c, &req); err != nil {
		return err
	}

	inv, err := h.service.Update(c.Request().Context(), callerOf(c), pathID(c, "id"), req)
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("investment", "update").Inc()
	return c.JSON(http.StatusOK, toInvestmentResponse(inv))
}

// Delete handles DELETE /investimentos/:id.
//
// @Summary      Remove a catalog entry
// @Tags         investimentos
// @Param        userId  header  string  true  "Caller account id (Admin)"
// @Param        id      path    string  true  "Investment id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /investimentos/{id} [delete]
func (h *InvestmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), callerOf(c), pathID(c, "id")); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("investment", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
