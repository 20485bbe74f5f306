package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// basketService implements the BasketUsecase interface.
type basketService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// BasketServiceParams holds dependencies for basketService, injected by Fx.
type BasketServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewBasketService is the constructor for basketService.
func NewBasketService(params BasketServiceParams) usecase.BasketUsecase {
	return &basketService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *basketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the user's basket, creating an empty one on first use.
func (srv *basketService) Get(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	basket, err := srv.orderRepo.GetOrCreateBasket(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load basket")
	}

	return basket, nil
}

// AddItems appends lines to the basket as one atomic batch. A collision
// with an existing line, or between two lines of the batch, fails the
// whole batch so the basket is never half-updated.
func (srv *basketService) AddItems(ctx context.Context, userID uuid.UUID, items []usecase.BasketItemInput) (int, error) {
	if len(items) == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("items must not be empty")
	}

	seen := make(map[uuid.UUID]struct{}, len(items))
	lines := make([]entity.OrderItem, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item.ProductInfoID]; dup {
			return 0, domainerrors.ErrDuplicateBasketItem.WithDetails(item.ProductInfoID.String())
		}
		seen[item.ProductInfoID] = struct{}{}
		lines = append(lines, entity.OrderItem{
			ID:            uuid.New(),
			ProductInfoID: item.ProductInfoID,
			Quantity:      item.Quantity,
		})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		basket, err := orderRepo.GetOrCreateBasket(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load basket")
		}

		if err := orderRepo.AddItems(ctx, basket.ID, lines); err != nil {
			var dup *repository.DuplicateItemError
			if errors.As(err, &dup) {
				return domainerrors.ErrDuplicateBasketItem.WithDetails(dup.ProductInfoID.String())
			}
			if errors.Is(err, repository.ErrProductInfoNotFound) {
				return domainerrors.ErrProductInfoNotFound
			}

			return errors.Wrap(err, "failed to add basket items")
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Basket items added",
		slog.String("user_id", userID.String()), slog.Int("count", len(lines)))

	return len(lines), nil
}

// RemoveItems deletes the given lines and reports how many went away.
func (srv *basketService) RemoveItems(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("items must not be empty")
	}

	basket, err := srv.orderRepo.GetOrCreateBasket(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load basket")
	}

	deleted, err := srv.orderRepo.DeleteItems(ctx, basket.ID, itemIDs)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete basket items")
	}

	return deleted, nil
}

// UpdateQuantities applies quantity changes one by one across all of the
// user's orders, basket or placed, and stops at the first line the user
// does not own. Updates already applied are kept, which is why this
// deliberately runs outside a transaction.
func (srv *basketService) UpdateQuantities(ctx context.Context, userID uuid.UUID, updates []usecase.BasketQuantityInput) (int, error) {
	if len(updates) == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("items must not be empty")
	}

	applied := 0
	for _, update := range updates {
		err := srv.orderRepo.UpdateItemQuantity(ctx, userID, update.ItemID, update.Quantity)
		if err != nil {
			if errors.Is(err, repository.ErrOrderItemNotFound) {
				return applied, domainerrors.ErrOrderItemNotFound.WithDetails(update.ItemID.String())
			}

			return applied, errors.Wrap(err, "failed to update basket item")
		}
		applied++
	}

	return applied, nil
}
