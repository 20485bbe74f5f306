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

// partnerService implements the PartnerUsecase interface.
type partnerService struct {
	userRepo  repository.UserRepository
	shopRepo  repository.ShopRepository
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// PartnerServiceParams holds dependencies for partnerService, injected by Fx.
type PartnerServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	ShopRepo  repository.ShopRepository
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPartnerService is the constructor for partnerService.
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	return &partnerService{
		userRepo:  params.UserRepo,
		shopRepo:  params.ShopRepo,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *partnerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireShop loads the caller's shop, rejecting buyer accounts and shop
// accounts that have not imported a feed yet.
func (srv *partnerService) requireShop(ctx context.Context, userID uuid.UUID) (*entity.Shop, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Kind != entity.UserKindShop {
		return nil, domainerrors.ErrShopsOnly
	}

	shop, err := srv.shopRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound.WrapMessage("no shop linked to this account, import a price feed first")
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

// GetState returns the shop managed by the caller.
func (srv *partnerService) GetState(ctx context.Context, userID uuid.UUID) (*entity.Shop, error) {
	return srv.requireShop(ctx, userID)
}

// SetState flips whether the caller's shop accepts new orders.
func (srv *partnerService) SetState(ctx context.Context, userID uuid.UUID, accepting bool) error {
	shop, err := srv.requireShop(ctx, userID)
	if err != nil {
		return err
	}

	if err := srv.shopRepo.UpdateAccepting(ctx, shop.ID, accepting); err != nil {
		return errors.Wrap(err, "failed to update shop state")
	}

	srv.log(ctx).Info("Shop state changed",
		slog.String("shop_id", shop.ID.String()), slog.Bool("accepting", accepting))

	return nil
}

// Orders retrieves placed orders containing the caller's shop lines.
func (srv *partnerService) Orders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	shop, err := srv.requireShop(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindShopOrders(ctx, shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop orders")
	}

	return orders, nil
}

// AdvanceOrder moves an order one step along the fulfilment pipeline or
// cancels it. The state flip is conditional on the state the caller saw,
// so concurrent updates cannot skip or repeat a step.
func (srv *partnerService) AdvanceOrder(ctx context.Context, userID, orderID uuid.UUID, state entity.OrderState) error {
	if !state.IsValid() || state == entity.OrderStateBasket {
		return domainerrors.ErrValidationFailed.WithDetails("state is not a valid fulfilment state")
	}

	shop, err := srv.requireShop(ctx, userID)
	if err != nil {
		return err
	}

	order, err := srv.orderRepo.FindShopOrder(ctx, shop.ID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to load order")
	}

	if !order.State.CanTransitionTo(state) {
		return domainerrors.ErrOrderStateConflict.WithDetails(
			"cannot move order from " + order.State.String() + " to " + state.String())
	}

	if err := srv.orderRepo.UpdateState(ctx, orderID, order.State, state); err != nil {
		if errors.Is(err, repository.ErrStaleOrderState) {
			return domainerrors.ErrOrderStateConflict
		}

		return errors.Wrap(err, "failed to update order state")
	}

	event := &service.Event{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Name:       service.EventOrderStateChanged,
		UserID:     order.UserID.String(),
		OrderID:    orderID.String(),
		OrderState: state.String(),
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order state event",
			slog.String("order_id", orderID.String()), slog.Any("error", err))
	}

	srv.log(ctx).Info("Order state changed",
		slog.String("order_id", orderID.String()), slog.String("state", state.String()))

	return nil
}
