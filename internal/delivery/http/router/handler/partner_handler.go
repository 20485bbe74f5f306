package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PartnerHandlerParams holds dependencies for PartnerHandler, injected by Fx.
type PartnerHandlerParams struct {
	fx.In

	ImportUC  usecase.ImportUsecase
	PartnerUC usecase.PartnerUsecase
	Logger    *slog.Logger
}

// PartnerHandler holds dependencies for supplier-side handlers
type PartnerHandler struct {
	importUC  usecase.ImportUsecase
	partnerUC usecase.PartnerUsecase
	logger    *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler
func NewPartnerHandler(params PartnerHandlerParams) *PartnerHandler {
	return &PartnerHandler{
		importUC:  params.ImportUC,
		partnerUC: params.PartnerUC,
		logger:    params.Logger,
	}
}

// ImportRequest names the price feed to import.
type ImportRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// SetStateRequest flips whether the shop accepts new orders.
type SetStateRequest struct {
	Accepting *bool `json:"accepting" validate:"required"`
}

// AdvanceOrderRequest moves an order along the fulfilment pipeline.
type AdvanceOrderRequest struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	State string    `json:"state" validate:"required"`
}

// Import queues a price feed import for the caller's shop
func (h *PartnerHandler) Import(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.importUC.Queue(c.Request().Context(), userID, req.URL); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"message": "Import queued"})
}

// GetState returns the caller's shop
func (h *PartnerHandler) GetState(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shop, err := h.partnerUC.GetState(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopDTO(shop))
}

// SetState flips whether the caller's shop accepts new orders
func (h *PartnerHandler) SetState(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SetStateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid state input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.partnerUC.SetState(c.Request().Context(), userID, *req.Accepting); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"accepting": *req.Accepting})
}

// Orders returns placed orders containing the caller's shop lines
func (h *PartnerHandler) Orders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.partnerUC.Orders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderDTOs(orders))
}

// AdvanceOrder moves one order a step forward, or cancels it
func (h *PartnerHandler) AdvanceOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AdvanceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order state input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	state := entity.OrderState(req.State)
	if err := h.partnerUC.AdvanceOrder(c.Request().Context(), userID, req.ID, state); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"state": req.State})
}
