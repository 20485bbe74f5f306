package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// PartnerUsecase covers the supplier side: shop state and order fulfilment.
// Every operation requires a shop account and resolves its shop first.
type PartnerUsecase interface {
	// GetState returns the shop managed by the caller.
	GetState(ctx context.Context, userID uuid.UUID) (*entity.Shop, error)

	// SetState flips whether the caller's shop accepts new orders.
	SetState(ctx context.Context, userID uuid.UUID, accepting bool) error

	// Orders retrieves placed orders containing the caller's shop lines.
	Orders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// AdvanceOrder moves an order one step along the fulfilment pipeline,
	// or cancels it, then publishes a state change event.
	AdvanceOrder(ctx context.Context, userID, orderID uuid.UUID, state entity.OrderState) error
}
