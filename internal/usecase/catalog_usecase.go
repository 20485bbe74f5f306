package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchProductsInput narrows the catalog search. Nil filters match all.
type SearchProductsInput struct {
	ShopID     *uuid.UUID
	CategoryID *int64
	Page       int
	PageSize   int
}

// CatalogUsecase defines read-side operations over the unified catalog.
type CatalogUsecase interface {
	// ListShops retrieves all shops currently accepting orders.
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// ListCategories retrieves all known categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// SearchProducts retrieves listings of accepting shops matching the
	// filter, fully loaded for display.
	SearchProducts(ctx context.Context, input SearchProductsInput) ([]*entity.ProductInfo, error)
}
