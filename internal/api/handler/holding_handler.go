package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/investment-app/portfolio-api/internal/api/metrics"
	"github.com/investment-app/portfolio-api/internal/core/ports"
)

// HoldingHandler handles HTTP requests for /users/:userId/investimentos.
type HoldingHandler struct {
	service ports.HoldingService
}

func NewHoldingHandler(service ports.HoldingService) *HoldingHandler {
	return &HoldingHandler{service: service}
}

// Create handles POST /users/:userId/investimentos.
//
// @Summary      Open a holding
// @Tags         holdings
// @Accept       json
// @Produce      json
// @Param        userId  header    string                    true  "Caller account id (owner or Admin)"
// @Param        userId  path      string                    true  "Owner account id"
// @Param        body    body      ports.CreateHoldingInput  true  "Holding"
// @Success      201     {object}  holdingResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId}/investimentos [post]
func (h *HoldingHandler) Create(c echo.Context) error {
	var req ports.CreateHoldingInput
	if err := bind(c, &req); err != nil {
		return err
	}

	holding, err := h.service.Create(c.Request().Context(), callerOf(c), pathID(c, "userId"), req)
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("holding", "create").Inc()
	return c.JSON(http.StatusCreated, toHoldingResponse(holding))
}

// List handles GET /users/:userId/investimentos.
//
// @Summary      List the holdings of an account
// @Tags         holdings
// @Produce      json
// @Param        userId  header    string  true  "Caller account id (owner or Admin)"
// @Param        userId  path      string  true  "Owner account id"
// @Success      200     {array}   holdingResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId}/investimentos [get]
func (h *HoldingHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), callerOf(c), pathID(c, "userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHoldingResponses(items))
}

// Get handles GET /users/:userId/investimentos/:id.
//
// @Summary      Get a holding
// @Tags         holdings
// @Produce      json
// @Param        userId  header    string  true  "Caller account id (owner or Admin)"
// @Param        userId  path      string  true  "Owner account id"
// @Param        id      path      string  true  "Holding id"
// @Success      200     {object}  holdingResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId}/investimentos/{id} [get]
func (h *HoldingHandler) Get(c echo.Context) error {
	holding, err := h.service.Get(c.Request().Context(), callerOf(c), pathID(c, "userId"), pathID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHoldingResponse(holding))
}

// Update handles PUT /users/:userId/investimentos/:id.
//
// @Summary      Update a holding
// @Description  investmentId, owner and id are immutable. A closed holding cannot be reopened.
// @Tags         holdings
// @Accept       json
// @Produce      json
// @Param        userId  header    string                    true  "Caller account id (owner or Admin)"
// @Param        userId  path      string                    true  "Owner account id"
// @Param        id      path      string                    true  "Holding id"
// @Param        body    body      ports.UpdateHoldingInput  true  "Holding"
// @Success      200     {object}  holdingResponse
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId}/investimentos/{id} [put]
func (h *HoldingHandler) Update(c echo.Context) error {
	var req ports.UpdateHoldingInput
	if err := bind(c, &req); err != nil {
		return err
	}

	holding, err := h.service.Update(c.Request().Context(), callerOf(c), pathID(c, "userId"), pathID(c, "id"), req)
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("holding", "update").Inc()
	return c.JSON(http.StatusOK, toHoldingResponse(holding))
}

// Delete handles DELETE /users/:userId/investimentos/:id.
//
// @Summary      Deactivate a holding
// @Tags         holdings
// @Param        userId  header  string  true  "Caller account id (owner or Admin)"
// @Param        userId  path    string  true  "Owner account id"
// @Param        id      path    string  true  "Holding id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{userId}/investimentos/{id} [delete]
func (h *HoldingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), callerOf(c), pathID(c, "userId"), pathID(c, "id")); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("holding", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
