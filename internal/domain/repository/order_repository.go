// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"fmt"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderItemNotFound is returned when an order item is not found.
	ErrOrderItemNotFound = errors.New("order item not found")
	// ErrStaleOrderState is returned when a conditional state update matched
	// no row, meaning the order moved to another state concurrently.
	ErrStaleOrderState = errors.New("order state changed concurrently")
)

// DuplicateItemError is returned when an order already holds a line for the
// given listing. It carries the listing ID so callers can report which one.
type DuplicateItemError struct {
	ProductInfoID uuid.UUID
}

// Error implements the error interface.
func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("order already holds listing %s", e.ProductInfoID)
}

// OrderRepository defines the interface for basket and order persistence.
type OrderRepository interface {
	// GetOrCreateBasket returns the user's basket-state order, creating one
	// if none exists. Concurrent calls for the same user converge on a
	// single basket. Items and their listings are loaded.
	GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// AddItems appends lines to an order in one shot. If any line collides
	// with an existing (order, listing) pair, nothing is inserted and a
	// DuplicateItemError identifies the offender. A line referencing an
	// unknown listing yields ErrProductInfoNotFound.
	AddItems(ctx context.Context, orderID uuid.UUID, items []entity.OrderItem) error

	// DeleteItems removes the given lines from an order and reports how
	// many rows were actually deleted.
	DeleteItems(ctx context.Context, orderID uuid.UUID, itemIDs []uuid.UUID) (int64, error)

	// UpdateItemQuantity sets the quantity of one line belonging to any of
	// the user's orders, basket or placed. Returns ErrOrderItemNotFound
	// when no such line exists for that user.
	UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error

	// Checkout conditionally moves the user's order from the basket state
	// to the new state and pins the delivery contact. When the order is no
	// longer a basket, or belongs to someone else, ErrStaleOrderState is
	// returned and nothing changes.
	Checkout(ctx context.Context, userID, orderID, contactID uuid.UUID) error

	// FindUserOrders retrieves the user's placed orders, newest first, with
	// items, listings and contact loaded. Baskets are excluded.
	FindUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindUserOrder retrieves one placed order of a user with full detail.
	FindUserOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// FindShopOrders retrieves placed orders containing at least one line
	// from the given shop. Only that shop's lines are loaded.
	FindShopOrders(ctx context.Context, shopID uuid.UUID) ([]*entity.Order, error)

	// FindShopOrder retrieves one such order by ID.
	FindShopOrder(ctx context.Context, shopID, orderID uuid.UUID) (*entity.Order, error)

	// UpdateState conditionally moves an order from one state to another.
	// Returns ErrStaleOrderState when the order was not in the from state.
	UpdateState(ctx context.Context, orderID uuid.UUID, from, to entity.OrderState) error
}
