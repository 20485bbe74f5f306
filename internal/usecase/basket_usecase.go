package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// BasketItemInput is one line to add to the basket.
type BasketItemInput struct {
	ProductInfoID uuid.UUID `json:"product_info" validate:"required"`
	Quantity      int       `json:"quantity" validate:"required,gt=0"`
}

// BasketQuantityInput updates the quantity of one existing basket line.
type BasketQuantityInput struct {
	ItemID   uuid.UUID `json:"id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gt=0"`
}

// BasketUsecase manages the user's single mutable basket order.
type BasketUsecase interface {
	// Get returns the user's basket, creating an empty one on first use.
	Get(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// AddItems appends lines to the basket as one atomic batch. A line
	// colliding with an existing one fails the whole batch. Returns the
	// number of lines added.
	AddItems(ctx context.Context, userID uuid.UUID, items []BasketItemInput) (int, error)

	// RemoveItems deletes the given lines and reports how many went away.
	// Lines not in the basket are skipped silently.
	RemoveItems(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (int64, error)

	// UpdateQuantities applies quantity changes in order across all of the
	// user's orders, stopping at the first line the user does not own.
	// Changes already applied stay applied; the count of applied updates
	// is returned with the error.
	UpdateQuantities(ctx context.Context, userID uuid.UUID, updates []BasketQuantityInput) (int, error)
}
