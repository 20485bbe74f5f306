// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrProductInfoNotFound is returned when a product listing is not found.
var ErrProductInfoNotFound = errors.New("product listing not found")

// CatalogFilter narrows a catalog search. Nil fields are not applied.
type CatalogFilter struct {
	ShopID     *uuid.UUID
	CategoryID *int64
	Limit      int
	Offset     int
}

// CatalogRepository defines the interface for catalog persistence: shared
// categories, abstract products, named parameters and per-shop listings.
type CatalogRepository interface {
	// UpsertCategories inserts the given categories, updating the name of
	// any category whose feed-assigned ID already exists.
	UpsertCategories(ctx context.Context, categories []entity.Category) error

	// ListCategories retrieves all known categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// FindOrCreateProduct returns the abstract product with the given name
	// and category, creating it if absent.
	FindOrCreateProduct(ctx context.Context, name string, categoryID int64) (*entity.Product, error)

	// FindOrCreateParameter returns the named parameter, creating it if absent.
	FindOrCreateParameter(ctx context.Context, name string) (*entity.Parameter, error)

	// DeleteShopListings removes every listing of a shop. Listing parameters
	// and basket lines referencing them go with them.
	DeleteShopListings(ctx context.Context, shopID uuid.UUID) error

	// UpsertListing persists a per-shop listing. When a listing with the
	// same (product, shop, external ID) already exists its row is updated
	// in place and info takes over the stored row's identity. The returned
	// flag reports whether an existing row was replaced.
	UpsertListing(ctx context.Context, info *entity.ProductInfo) (bool, error)

	// CreateListingParameter persists one parameter value of a listing.
	CreateListingParameter(ctx context.Context, param *entity.ProductParameter) error

	// DeleteListingParameters removes all parameter values of one listing.
	DeleteListingParameters(ctx context.Context, listingID uuid.UUID) error

	// SearchListings retrieves listings of accepting shops matching the
	// filter, with product, category, shop and parameters loaded.
	SearchListings(ctx context.Context, filter CatalogFilter) ([]*entity.ProductInfo, error)
}
