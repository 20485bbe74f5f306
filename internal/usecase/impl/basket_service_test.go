package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// basketServiceFixtures holds all test dependencies for basket service tests.
type basketServiceFixtures struct {
	service   usecase.BasketUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func createTestBasketService(t *testing.T) basketServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewBasketService(BasketServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Logger:    logger,
	})

	return basketServiceFixtures{
		service:   svc,
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

func TestBasketService_AddItems_Success(t *testing.T) {
	fx := createTestBasketService(t)

	ctx := context.Background()
	userID := uuid.New()
	basketID := uuid.New()
	items := []usecase.BasketItemInput{
		{ProductInfoID: uuid.New(), Quantity: 2},
		{ProductInfoID: uuid.New(), Quantity: 1},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				GetOrCreateBasket(ctx, userID).
				Return(&entity.Order{ID: basketID, UserID: userID, State: entity.OrderStateBasket}, nil)
			mockOrderRepo.EXPECT().
				AddItems(ctx, basketID, mock.MatchedBy(func(lines []entity.OrderItem) bool {
					return len(lines) == 2 && lines[0].ProductInfoID == items[0].ProductInfoID
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	created, err := fx.service.AddItems(ctx, userID, items)

	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestBasketService_AddItems_Empty(t *testing.T) {
	fx := createTestBasketService(t)

	created, err := fx.service.AddItems(context.Background(), uuid.New(), nil)

	require.Error(t, err)
	assert.Zero(t, created)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestBasketService_AddItems_DuplicateWithinBatch(t *testing.T) {
	fx := createTestBasketService(t)

	listingID := uuid.New()
	items := []usecase.BasketItemInput{
		{ProductInfoID: listingID, Quantity: 1},
		{ProductInfoID: listingID, Quantity: 3},
	}

	created, err := fx.service.AddItems(context.Background(), uuid.New(), items)

	require.Error(t, err)
	assert.Zero(t, created)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrDuplicateBasketItem.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, listingID.String(), appErr.Details())
}

func TestBasketService_AddItems_CollidesWithExistingLine(t *testing.T) {
	fx := createTestBasketService(t)

	ctx := context.Background()
	userID := uuid.New()
	basketID := uuid.New()
	listingID := uuid.New()
	items := []usecase.BasketItemInput{{ProductInfoID: listingID, Quantity: 1}}

	expected := domainerrors.ErrDuplicateBasketItem.WithDetails(listingID.String())

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				GetOrCreateBasket(ctx, userID).
				Return(&entity.Order{ID: basketID, UserID: userID, State: entity.OrderStateBasket}, nil)
			mockOrderRepo.EXPECT().
				AddItems(ctx, basketID, mock.AnythingOfType("[]entity.OrderItem")).
				Return(&repository.DuplicateItemError{ProductInfoID: listingID})

			_ = fn(mockFactory)
		}).
		Return(expected)

	created, err := fx.service.AddItems(ctx, userID, items)

	require.Error(t, err)
	assert.Zero(t, created)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrDuplicateBasketItem.ErrorCode(), appErr.ErrorCode())
}

func TestBasketService_AddItems_UnknownListing(t *testing.T) {
	fx := createTestBasketService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []usecase.BasketItemInput{{ProductInfoID: uuid.New(), Quantity: 1}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrProductInfoNotFound)

	created, err := fx.service.AddItems(ctx, userID, items)

	require.Error(t, err)
	assert.Zero(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrProductInfoNotFound)
}

func TestBasketService_RemoveItems_ReportsDeletedCount(t *testing.T) {
	fx := createTestBasketService(t)

	ctx := context.Background()
	userID := uuid.New()
	basketID := uuid.New()
	itemIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	fx.orderRepo.EXPECT().
		GetOrCreateBasket(ctx, userID).
		Return(&entity.Order{ID: basketID, UserID: userID, State: entity.OrderStateBasket}, nil)
	fx.orderRepo.EXPECT().
		DeleteItems(ctx, basketID, itemIDs).
		Return(int64(2), nil)

	deleted, err := fx.service.RemoveItems(ctx, userID, itemIDs)

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestBasketService_UpdateQuantities_Success(t *testing.T) {
	fx := createTestBasketService(t)

	ctx := context.Background()
	userID := uuid.New()
	updates := []usecase.BasketQuantityInput{
		{ItemID: uuid.New(), Quantity: 5},
		{ItemID: uuid.New(), Quantity: 1},
	}

	fx.orderRepo.EXPECT().
		UpdateItemQuantity(ctx, userID, updates[0].ItemID, 5).
		Return(nil)
	fx.orderRepo.EXPECT().
		UpdateItemQuantity(ctx, userID, updates[1].ItemID, 1).
		Return(nil)

	applied, err := fx.service.UpdateQuantities(ctx, userID, updates)

	require.NoError(t, err)
	assert.Equal(t, 2, applied)
}

func TestBasketService_UpdateQuantities_CoversPlacedOrders(t *testing.T) {
	fx := createTestBasketService(t)

	ctx := context.Background()
	userID := uuid.New()
	placedOrderItem := uuid.New()
	updates := []usecase.BasketQuantityInput{{ItemID: placedOrderItem, Quantity: 3}}

	// The update is scoped to the user, not to the basket, so a line of an
	// already placed order is reachable without any basket lookup.
	fx.orderRepo.EXPECT().
		UpdateItemQuantity(ctx, userID, placedOrderItem, 3).
		Return(nil)

	applied, err := fx.service.UpdateQuantities(ctx, userID, updates)

	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	fx.orderRepo.AssertNotCalled(t, "GetOrCreateBasket", mock.Anything, mock.Anything)
}

func TestBasketService_UpdateQuantities_StopsAtUnknownLine(t *testing.T) {
	fx := createTestBasketService(t)

	ctx := context.Background()
	userID := uuid.New()
	updates := []usecase.BasketQuantityInput{
		{ItemID: uuid.New(), Quantity: 5},
		{ItemID: uuid.New(), Quantity: 1},
		{ItemID: uuid.New(), Quantity: 7},
	}

	fx.orderRepo.EXPECT().
		UpdateItemQuantity(ctx, userID, updates[0].ItemID, 5).
		Return(nil)
	fx.orderRepo.EXPECT().
		UpdateItemQuantity(ctx, userID, updates[1].ItemID, 1).
		Return(repository.ErrOrderItemNotFound)

	applied, err := fx.service.UpdateQuantities(ctx, userID, updates)

	require.Error(t, err)
	assert.Equal(t, 1, applied)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOrderItemNotFound.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, updates[1].ItemID.String(), appErr.Details())
}
