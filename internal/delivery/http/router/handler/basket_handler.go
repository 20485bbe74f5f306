package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BasketHandlerParams holds dependencies for BasketHandler, injected by Fx.
type BasketHandlerParams struct {
	fx.In

	BasketUC usecase.BasketUsecase
	Logger   *slog.Logger
}

// BasketHandler holds dependencies for basket handlers
type BasketHandler struct {
	basketUC usecase.BasketUsecase
	logger   *slog.Logger
}

// NewBasketHandler is the constructor for BasketHandler
func NewBasketHandler(params BasketHandlerParams) *BasketHandler {
	return &BasketHandler{
		basketUC: params.BasketUC,
		logger:   params.Logger,
	}
}

// AddItemsRequest carries the basket lines to append.
type AddItemsRequest struct {
	Items []usecase.BasketItemInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateQuantitiesRequest carries the quantity changes to apply.
type UpdateQuantitiesRequest struct {
	Items []usecase.BasketQuantityInput `json:"items" validate:"required,min=1,dive"`
}

// RemoveItemsRequest names the basket lines to delete. IDs are raw
// strings; unparseable ones are skipped rather than failing the request.
type RemoveItemsRequest struct {
	Items []string `json:"items" validate:"required,min=1"`
}

// Get returns the user's basket, creating it on first use
func (h *BasketHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	basket, err := h.basketUC.Get(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderDTO(basket))
}

// AddItems appends lines to the basket as one atomic batch
func (h *BasketHandler) AddItems(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddItemsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid basket input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	added, err := h.basketUC.AddItems(c.Request().Context(), userID, req.Items)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]int{"created": added})
}

// UpdateQuantities applies quantity changes to existing basket lines
func (h *BasketHandler) UpdateQuantities(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateQuantitiesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid basket input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	applied, err := h.basketUC.UpdateQuantities(c.Request().Context(), userID, req.Items)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"updated": applied})
}

// RemoveItems deletes lines from the basket
func (h *BasketHandler) RemoveItems(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RemoveItemsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid basket input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	itemIDs := parseIDList(req.Items)
	if len(itemIDs) == 0 {
		return response.Success(c, http.StatusOK, map[string]int64{"deleted": 0})
	}

	deleted, err := h.basketUC.RemoveItems(c.Request().Context(), userID, itemIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted})
}
