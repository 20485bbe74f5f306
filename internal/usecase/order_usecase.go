package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase covers the buyer side of placed orders.
type OrderUsecase interface {
	// List retrieves the user's placed orders, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Get retrieves one placed order with items and totals.
	Get(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// Checkout turns the user's basket into a placed order pinned to one
	// of their delivery contacts, then publishes an order placed event.
	Checkout(ctx context.Context, userID, orderID, contactID uuid.UUID) error
}
