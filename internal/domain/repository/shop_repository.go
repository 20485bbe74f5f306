// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for shop persistence.
var (
	// ErrShopNotFound is returned when a shop is not found.
	ErrShopNotFound = errors.New("shop not found")
	// ErrDuplicateShop is returned when a shop with the same name already exists.
	ErrDuplicateShop = errors.New("shop name already taken")
)

// ShopRepository defines the interface for shop-related database operations.
type ShopRepository interface {
	// FindByID retrieves a shop by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindByName retrieves a shop by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Shop, error)

	// FindByUserID retrieves the shop managed by a given staff account.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error)

	// Create persists a new shop.
	Create(ctx context.Context, shop *entity.Shop) error

	// Update modifies an existing shop.
	Update(ctx context.Context, shop *entity.Shop) error

	// UpdateAccepting flips whether the shop accepts new orders.
	UpdateAccepting(ctx context.Context, id uuid.UUID, accepting bool) error

	// ListAccepting retrieves all shops that currently accept orders.
	ListAccepting(ctx context.Context) ([]*entity.Shop, error)

	// LinkCategories records which categories the shop offers listings in.
	// Links absent from categoryIDs are removed.
	LinkCategories(ctx context.Context, shopID uuid.UUID, categoryIDs []int64) error
}
