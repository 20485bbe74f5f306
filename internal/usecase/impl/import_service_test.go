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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// importServiceFixtures holds all test dependencies for import service tests.
type importServiceFixtures struct {
	service   usecase.ImportUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	fetcher   *mockSvc.MockFeedFetcher
	publisher *mockSvc.MockEventPublisher
}

func createTestImportService(t *testing.T) importServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	fetcher := mockSvc.NewMockFeedFetcher(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewImportService(ImportServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Fetcher:   fetcher,
		Publisher: publisher,
		Logger:    logger,
	})

	return importServiceFixtures{
		service:   svc,
		txManager: txManager,
		userRepo:  userRepo,
		fetcher:   fetcher,
		publisher: publisher,
	}
}

func shopAccount(id uuid.UUID) *entity.User {
	return &entity.User{ID: id, Email: "shop@example.com", Kind: entity.UserKindShop, Active: true}
}

func testFeed() *service.PriceFeed {
	return &service.PriceFeed{
		Shop: "Connect",
		Categories: []service.FeedCategory{
			{ID: 224, Name: "Smartphones"},
		},
		Goods: []service.FeedGood{
			{
				ID:       4216292,
				Category: 224,
				Model:    "apple/iphone/xs-max",
				Name:     "Smartphone Apple iPhone XS Max 512GB",
				Price:    110000,
				PriceRRC: 116990,
				Quantity: 14,
				Parameters: map[string]string{
					"Color":         "gold",
					"Internal, GB":  "512",
					"Display, inch": "6.5",
				},
			},
		},
	}
}

func TestImportService_Queue_Success(t *testing.T) {
	fx := createTestImportService(t)

	ctx := context.Background()
	userID := uuid.New()
	feedURL := "https://supplier.example.com/price.yaml"

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(shopAccount(userID), nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.Event) bool {
			return event.Name == service.EventImportRequested && event.FeedURL == feedURL
		})).
		Return(nil)

	err := fx.service.Queue(ctx, userID, feedURL)

	require.NoError(t, err)
}

func TestImportService_Queue_InvalidURL(t *testing.T) {
	fx := createTestImportService(t)

	err := fx.service.Queue(context.Background(), uuid.New(), "ftp://supplier.example.com/price.yaml")

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestImportService_Queue_BuyerForbidden(t *testing.T) {
	fx := createTestImportService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Kind: entity.UserKindBuyer, Active: true}, nil)

	err := fx.service.Queue(ctx, userID, "https://supplier.example.com/price.yaml")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrShopsOnly)
}

func TestImportService_Run_FirstImportCreatesShop(t *testing.T) {
	fx := createTestImportService(t)

	ctx := context.Background()
	userID := uuid.New()
	feedURL := "https://supplier.example.com/price.yaml"
	feed := testFeed()
	productID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(shopAccount(userID), nil)
	fx.fetcher.EXPECT().Fetch(ctx, feedURL).Return(feed, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().NewShopRepository().Return(mockShopRepo)
			mockFactory.EXPECT().NewCatalogRepository().Return(mockCatalogRepo)

			mockShopRepo.EXPECT().
				FindByName(ctx, feed.Shop).
				Return(nil, repository.ErrShopNotFound)
			mockShopRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(shop *entity.Shop) bool {
					return shop.Name == feed.Shop && shop.UserID != nil && *shop.UserID == userID && shop.Accepting
				})).
				Return(nil)

			mockCatalogRepo.EXPECT().
				UpsertCategories(ctx, []entity.Category{{ID: 224, Name: "Smartphones"}}).
				Return(nil)
			mockShopRepo.EXPECT().
				LinkCategories(ctx, mock.AnythingOfType("uuid.UUID"), []int64{224}).
				Return(nil)
			mockCatalogRepo.EXPECT().
				DeleteShopListings(ctx, mock.AnythingOfType("uuid.UUID")).
				Return(nil)

			mockCatalogRepo.EXPECT().
				FindOrCreateProduct(ctx, feed.Goods[0].Name, int64(224)).
				Return(&entity.Product{ID: productID, Name: feed.Goods[0].Name, CategoryID: 224}, nil)
			mockCatalogRepo.EXPECT().
				UpsertListing(ctx, mock.MatchedBy(func(info *entity.ProductInfo) bool {
					return info.ProductID == productID &&
						info.ExternalID == feed.Goods[0].ID &&
						info.Quantity == feed.Goods[0].Quantity &&
						info.Price.Equal(decimal.NewFromFloat(feed.Goods[0].Price))
				})).
				Return(false, nil)

			// Parameters are resolved in name order.
			for _, name := range []string{"Color", "Display, inch", "Internal, GB"} {
				mockCatalogRepo.EXPECT().
					FindOrCreateParameter(ctx, name).
					Return(&entity.Parameter{ID: uuid.New(), Name: name}, nil)
			}
			mockCatalogRepo.EXPECT().
				CreateListingParameter(ctx, mock.AnythingOfType("*entity.ProductParameter")).
				Return(nil).
				Times(3)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Run(ctx, userID, feedURL)

	require.NoError(t, err)
}

func TestImportService_Run_DuplicateGoodLastWriteWins(t *testing.T) {
	fx := createTestImportService(t)

	ctx := context.Background()
	userID := uuid.New()
	feedURL := "https://supplier.example.com/price.yaml"
	productID := uuid.New()

	// The same good twice: the later occurrence must overwrite the earlier
	// one, parameters included, without failing the import.
	feed := testFeed()
	second := feed.Goods[0]
	second.Price = 99000
	second.Quantity = 2
	second.Parameters = map[string]string{"Color": "silver"}
	feed.Goods = append(feed.Goods, second)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(shopAccount(userID), nil)
	fx.fetcher.EXPECT().Fetch(ctx, feedURL).Return(feed, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().NewShopRepository().Return(mockShopRepo)
			mockFactory.EXPECT().NewCatalogRepository().Return(mockCatalogRepo)

			mockShopRepo.EXPECT().
				FindByName(ctx, feed.Shop).
				Return(nil, repository.ErrShopNotFound)
			mockShopRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Shop")).
				Return(nil)
			mockCatalogRepo.EXPECT().
				UpsertCategories(ctx, mock.AnythingOfType("[]entity.Category")).
				Return(nil)
			mockShopRepo.EXPECT().
				LinkCategories(ctx, mock.AnythingOfType("uuid.UUID"), []int64{224}).
				Return(nil)
			mockCatalogRepo.EXPECT().
				DeleteShopListings(ctx, mock.AnythingOfType("uuid.UUID")).
				Return(nil)

			mockCatalogRepo.EXPECT().
				FindOrCreateProduct(ctx, feed.Goods[0].Name, int64(224)).
				Return(&entity.Product{ID: productID, Name: feed.Goods[0].Name, CategoryID: 224}, nil)

			// First occurrence inserts; the second conflicts with it, takes
			// over the stored row's ID and reports the replacement.
			var storedID uuid.UUID
			mockCatalogRepo.EXPECT().
				UpsertListing(ctx, mock.MatchedBy(func(info *entity.ProductInfo) bool {
					return info.Price.Equal(decimal.NewFromFloat(110000))
				})).
				Run(func(ctx context.Context, info *entity.ProductInfo) {
					storedID = info.ID
				}).
				Return(false, nil)
			mockCatalogRepo.EXPECT().
				UpsertListing(ctx, mock.MatchedBy(func(info *entity.ProductInfo) bool {
					return info.Price.Equal(decimal.NewFromFloat(99000)) && info.Quantity == 2
				})).
				Run(func(ctx context.Context, info *entity.ProductInfo) {
					info.ID = storedID
				}).
				Return(true, nil)
			mockCatalogRepo.EXPECT().
				DeleteListingParameters(ctx, mock.MatchedBy(func(id uuid.UUID) bool {
					return id == storedID
				})).
				Return(nil)

			for _, name := range []string{"Color", "Display, inch", "Internal, GB"} {
				mockCatalogRepo.EXPECT().
					FindOrCreateParameter(ctx, name).
					Return(&entity.Parameter{ID: uuid.New(), Name: name}, nil)
			}
			mockCatalogRepo.EXPECT().
				CreateListingParameter(ctx, mock.AnythingOfType("*entity.ProductParameter")).
				Return(nil).
				Times(4)

			err := fn(mockFactory)
			require.NoError(t, err)

			// The replacement's parameters landed after the wipe.
			mockCatalogRepo.AssertCalled(t, "DeleteListingParameters", ctx, storedID)
		}).
		Return(nil)

	err := fx.service.Run(ctx, userID, feedURL)

	require.NoError(t, err)
}

func TestImportService_Run_UndeclaredCategory(t *testing.T) {
	fx := createTestImportService(t)

	ctx := context.Background()
	userID := uuid.New()
	feedURL := "https://supplier.example.com/price.yaml"
	feed := testFeed()
	feed.Goods[0].Category = 999

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(shopAccount(userID), nil)
	fx.fetcher.EXPECT().Fetch(ctx, feedURL).Return(feed, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().NewShopRepository().Return(mockShopRepo)
			mockFactory.EXPECT().NewCatalogRepository().Return(mockCatalogRepo)

			mockShopRepo.EXPECT().
				FindByName(ctx, feed.Shop).
				Return(nil, repository.ErrShopNotFound)
			mockShopRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Shop")).
				Return(nil)
			mockCatalogRepo.EXPECT().
				UpsertCategories(ctx, mock.AnythingOfType("[]entity.Category")).
				Return(nil)
			mockShopRepo.EXPECT().
				LinkCategories(ctx, mock.AnythingOfType("uuid.UUID"), []int64{224}).
				Return(nil)
			mockCatalogRepo.EXPECT().
				DeleteShopListings(ctx, mock.AnythingOfType("uuid.UUID")).
				Return(nil)

			err := fn(mockFactory)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrFeedInvalid.ErrorCode(), appErr.ErrorCode())
		}).
		Return(domainerrors.ErrFeedInvalid)

	err := fx.service.Run(ctx, userID, feedURL)

	require.Error(t, err)
}

func TestImportService_Run_ForeignShopName(t *testing.T) {
	fx := createTestImportService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherOwner := uuid.New()
	feedURL := "https://supplier.example.com/price.yaml"
	feed := testFeed()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(shopAccount(userID), nil)
	fx.fetcher.EXPECT().Fetch(ctx, feedURL).Return(feed, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().NewShopRepository().Return(mockShopRepo)
			mockFactory.EXPECT().NewCatalogRepository().Return(mockCatalogRepo)

			mockShopRepo.EXPECT().
				FindByName(ctx, feed.Shop).
				Return(&entity.Shop{
					ID:     uuid.New(),
					Name:   feed.Shop,
					UserID: &otherOwner,
				}, nil)

			err := fn(mockFactory)
			assert.ErrorIs(t, err, domainerrors.ErrShopOwnershipViolation)
		}).
		Return(domainerrors.ErrShopOwnershipViolation)

	err := fx.service.Run(ctx, userID, feedURL)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrShopOwnershipViolation)
}

func TestImportService_Run_FetchFailurePreservesCatalog(t *testing.T) {
	fx := createTestImportService(t)

	ctx := context.Background()
	userID := uuid.New()
	feedURL := "https://supplier.example.com/price.yaml"

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(shopAccount(userID), nil)
	fx.fetcher.EXPECT().Fetch(ctx, feedURL).Return(nil, domainerrors.ErrUpstreamFetch)

	err := fx.service.Run(ctx, userID, feedURL)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFetch)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
