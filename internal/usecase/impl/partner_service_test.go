package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// partnerServiceFixtures holds all test dependencies for partner service tests.
type partnerServiceFixtures struct {
	service   usecase.PartnerUsecase
	userRepo  *mockRepo.MockUserRepository
	shopRepo  *mockRepo.MockShopRepository
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestPartnerService(t *testing.T) partnerServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewPartnerService(PartnerServiceParams{
		UserRepo:  userRepo,
		ShopRepo:  shopRepo,
		OrderRepo: orderRepo,
		Publisher: publisher,
		Logger:    logger,
	})

	return partnerServiceFixtures{
		service:   svc,
		userRepo:  userRepo,
		shopRepo:  shopRepo,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func TestPartnerService_SetState_Success(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	userID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), Name: "Connect", UserID: &userID, Accepting: true}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(shopAccount(userID), nil)
	fx.shopRepo.EXPECT().FindByUserID(ctx, userID).Return(shop, nil)
	fx.shopRepo.EXPECT().UpdateAccepting(ctx, shop.ID, false).Return(nil)

	err := fx.service.SetState(ctx, userID, false)

	require.NoError(t, err)
}

func TestPartnerService_GetState_NoShopYet(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(shopAccount(userID), nil)
	fx.shopRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrShopNotFound)

	shop, err := fx.service.GetState(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, shop)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestPartnerService_GetState_BuyerForbidden(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Kind: entity.UserKindBuyer, Active: true}, nil)

	shop, err := fx.service.GetState(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, shop)
	assert.ErrorIs(t, err, domainerrors.ErrShopsOnly)
}

func TestPartnerService_AdvanceOrder_Success(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	userID := uuid.New()
	buyerID := uuid.New()
	orderID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), Name: "Connect", UserID: &userID}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(shopAccount(userID), nil)
	fx.shopRepo.EXPECT().FindByUserID(ctx, userID).Return(shop, nil)
	fx.orderRepo.EXPECT().
		FindShopOrder(ctx, shop.ID, orderID).
		Return(&entity.Order{ID: orderID, UserID: buyerID, State: entity.OrderStateNew}, nil)
	fx.orderRepo.EXPECT().
		UpdateState(ctx, orderID, entity.OrderStateNew, entity.OrderStateConfirmed).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.Event) bool {
			return event.Name == service.EventOrderStateChanged &&
				event.UserID == buyerID.String() &&
				event.OrderState == entity.OrderStateConfirmed.String()
		})).
		Return(nil)

	err := fx.service.AdvanceOrder(ctx, userID, orderID, entity.OrderStateConfirmed)

	require.NoError(t, err)
}

func TestPartnerService_AdvanceOrder_SkippingStepRejected(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), Name: "Connect", UserID: &userID}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(shopAccount(userID), nil)
	fx.shopRepo.EXPECT().FindByUserID(ctx, userID).Return(shop, nil)
	fx.orderRepo.EXPECT().
		FindShopOrder(ctx, shop.ID, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), State: entity.OrderStateNew}, nil)

	err := fx.service.AdvanceOrder(ctx, userID, orderID, entity.OrderStateSent)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOrderStateConflict.ErrorCode(), appErr.ErrorCode())
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPartnerService_AdvanceOrder_BasketStateRejected(t *testing.T) {
	fx := createTestPartnerService(t)

	err := fx.service.AdvanceOrder(context.Background(), uuid.New(), uuid.New(), entity.OrderStateBasket)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestPartnerService_AdvanceOrder_ConcurrentLoser(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), Name: "Connect", UserID: &userID}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(shopAccount(userID), nil)
	fx.shopRepo.EXPECT().FindByUserID(ctx, userID).Return(shop, nil)
	fx.orderRepo.EXPECT().
		FindShopOrder(ctx, shop.ID, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), State: entity.OrderStateNew}, nil)
	fx.orderRepo.EXPECT().
		UpdateState(ctx, orderID, entity.OrderStateNew, entity.OrderStateConfirmed).
		Return(repository.ErrStaleOrderState)

	err := fx.service.AdvanceOrder(ctx, userID, orderID, entity.OrderStateConfirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderStateConflict)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPartnerService_Orders_ScopedToShop(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	userID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), Name: "Connect", UserID: &userID}
	orders := []*entity.Order{{ID: uuid.New(), State: entity.OrderStateNew}}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(shopAccount(userID), nil)
	fx.shopRepo.EXPECT().FindByUserID(ctx, userID).Return(shop, nil)
	fx.orderRepo.EXPECT().FindShopOrders(ctx, shop.ID).Return(orders, nil)

	got, err := fx.service.Orders(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
