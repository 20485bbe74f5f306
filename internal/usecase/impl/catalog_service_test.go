package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	shopRepo    *mockRepo.MockShopRepository
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	shopRepo := mockRepo.NewMockShopRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCatalogService(CatalogServiceParams{
		ShopRepo:    shopRepo,
		CatalogRepo: catalogRepo,
		Config: &config.Config{
			Catalog: &config.CatalogConfig{DefaultPageSize: 20, MaxPageSize: 100},
		},
		Logger: logger,
	})

	return catalogServiceFixtures{
		service:     svc,
		shopRepo:    shopRepo,
		catalogRepo: catalogRepo,
	}
}

func TestCatalogService_ListShops(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	shops := []*entity.Shop{{ID: uuid.New(), Name: "Connect", Accepting: true}}

	fx.shopRepo.EXPECT().ListAccepting(ctx).Return(shops, nil)

	got, err := fx.service.ListShops(ctx)

	require.NoError(t, err)
	assert.Equal(t, shops, got)
}

func TestCatalogService_SearchProducts_DefaultPaging(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.catalogRepo.EXPECT().
		SearchListings(ctx, repository.CatalogFilter{Limit: 20, Offset: 0}).
		Return([]*entity.ProductInfo{}, nil)

	listings, err := fx.service.SearchProducts(ctx, usecase.SearchProductsInput{})

	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestCatalogService_SearchProducts_PageSizeCapped(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	shopID := uuid.New()
	categoryID := int64(224)

	fx.catalogRepo.EXPECT().
		SearchListings(ctx, repository.CatalogFilter{
			ShopID:     &shopID,
			CategoryID: &categoryID,
			Limit:      100,
			Offset:     200,
		}).
		Return([]*entity.ProductInfo{}, nil)

	_, err := fx.service.SearchProducts(ctx, usecase.SearchProductsInput{
		ShopID:     &shopID,
		CategoryID: &categoryID,
		Page:       3,
		PageSize:   5000,
	})

	require.NoError(t, err)
}
