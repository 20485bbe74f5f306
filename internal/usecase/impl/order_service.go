package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves the user's placed orders, newest first.
func (srv *orderService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindUserOrders(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Get retrieves one placed order with items and totals.
func (srv *orderService) Get(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindUserOrder(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}

// Checkout turns the user's basket into a placed order. The state flip is
// a conditional update, so two concurrent checkouts of the same basket
// resolve to one winner; the loser gets a conflict and no event.
func (srv *orderService) Checkout(ctx context.Context, userID, orderID, contactID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		contactRepo := repoFactory.NewContactRepository()

		if _, err := contactRepo.FindByIDAndUser(ctx, contactID, userID); err != nil {
			if errors.Is(err, repository.ErrContactNotFound) {
				return domainerrors.ErrContactNotFound
			}

			return errors.Wrap(err, "failed to verify contact")
		}

		basket, err := orderRepo.GetOrCreateBasket(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load basket")
		}
		if basket.ID != orderID {
			return domainerrors.ErrOrderNotFound
		}
		if len(basket.Items) == 0 {
			return domainerrors.ErrBasketEmpty
		}

		if err := orderRepo.Checkout(ctx, userID, orderID, contactID); err != nil {
			if errors.Is(err, repository.ErrStaleOrderState) {
				return domainerrors.ErrOrderStateConflict
			}

			return errors.Wrap(err, "failed to check out basket")
		}

		return nil
	})
	if err != nil {
		return err
	}

	event := &service.Event{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Name:      service.EventOrderPlaced,
		UserID:    userID.String(),
		OrderID:   orderID.String(),
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order placed event",
			slog.String("order_id", orderID.String()), slog.Any("error", err))
	}

	srv.log(ctx).Info("Order placed",
		slog.String("user_id", userID.String()), slog.String("order_id", orderID.String()))

	return nil
}
