package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for public catalog handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListShops returns the shops currently accepting orders
func (h *CatalogHandler) ListShops(c echo.Context) error {
	shops, err := h.catalogUC.ListShops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dtos := make([]*ShopDTO, 0, len(shops))
	for _, shop := range shops {
		dtos = append(dtos, toShopDTO(shop))
	}

	return response.Success(c, http.StatusOK, dtos)
}

// ListCategories returns all known categories
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dtos := make([]*CategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, &CategoryDTO{ID: category.ID, Name: category.Name})
	}

	return response.Success(c, http.StatusOK, dtos)
}

// SearchProducts returns listings matching the query filters
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	var input usecase.SearchProductsInput

	if raw := c.QueryParam("shop_id"); raw != "" {
		shopID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
		}
		input.ShopID = &shopID
	}

	if raw := c.QueryParam("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
		}
		input.CategoryID = &categoryID
	}

	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.PageSize, _ = strconv.Atoi(c.QueryParam("page_size"))

	listings, err := h.catalogUC.SearchProducts(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingDTOs(listings))
}
