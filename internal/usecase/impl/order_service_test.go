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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Publisher: publisher,
		Logger:    logger,
	})

	return orderServiceFixtures{
		service:   svc,
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func TestOrderService_Get_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindUserOrder(ctx, userID, orderID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.Get(ctx, userID, orderID)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_Checkout_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	contactID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)

			mockContactRepo.EXPECT().
				FindByIDAndUser(ctx, contactID, userID).
				Return(&entity.Contact{ID: contactID, UserID: userID}, nil)
			mockOrderRepo.EXPECT().
				GetOrCreateBasket(ctx, userID).
				Return(&entity.Order{
					ID:     orderID,
					UserID: userID,
					State:  entity.OrderStateBasket,
					Items:  []entity.OrderItem{{ID: uuid.New(), Quantity: 1}},
				}, nil)
			mockOrderRepo.EXPECT().
				Checkout(ctx, userID, orderID, contactID).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.Event) bool {
			return event.Name == service.EventOrderPlaced && event.OrderID == orderID.String()
		})).
		Return(nil)

	err := fx.service.Checkout(ctx, userID, orderID, contactID)

	require.NoError(t, err)
}

func TestOrderService_Checkout_EmptyBasket(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	contactID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)

			mockContactRepo.EXPECT().
				FindByIDAndUser(ctx, contactID, userID).
				Return(&entity.Contact{ID: contactID, UserID: userID}, nil)
			mockOrderRepo.EXPECT().
				GetOrCreateBasket(ctx, userID).
				Return(&entity.Order{ID: orderID, UserID: userID, State: entity.OrderStateBasket}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrBasketEmpty)

	err := fx.service.Checkout(ctx, userID, orderID, contactID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBasketEmpty)
}

func TestOrderService_Checkout_WrongOrderID(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	contactID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)

			mockContactRepo.EXPECT().
				FindByIDAndUser(ctx, contactID, userID).
				Return(&entity.Contact{ID: contactID, UserID: userID}, nil)
			mockOrderRepo.EXPECT().
				GetOrCreateBasket(ctx, userID).
				Return(&entity.Order{ID: uuid.New(), UserID: userID, State: entity.OrderStateBasket}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrOrderNotFound)

	err := fx.service.Checkout(ctx, userID, uuid.New(), contactID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_Checkout_UnknownContact(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	contactID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)

			mockContactRepo.EXPECT().
				FindByIDAndUser(ctx, contactID, userID).
				Return(nil, repository.ErrContactNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrContactNotFound)

	err := fx.service.Checkout(ctx, userID, orderID, contactID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

// A checkout losing the conditional state flip must not publish an event.
func TestOrderService_Checkout_ConcurrentLoser(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	contactID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)

			mockContactRepo.EXPECT().
				FindByIDAndUser(ctx, contactID, userID).
				Return(&entity.Contact{ID: contactID, UserID: userID}, nil)
			mockOrderRepo.EXPECT().
				GetOrCreateBasket(ctx, userID).
				Return(&entity.Order{
					ID:     orderID,
					UserID: userID,
					State:  entity.OrderStateBasket,
					Items:  []entity.OrderItem{{ID: uuid.New(), Quantity: 1}},
				}, nil)
			mockOrderRepo.EXPECT().
				Checkout(ctx, userID, orderID, contactID).
				Return(repository.ErrStaleOrderState)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrOrderStateConflict)

	err := fx.service.Checkout(ctx, userID, orderID, contactID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderStateConflict)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
