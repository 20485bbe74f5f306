package impl

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	shopRepo        repository.ShopRepository
	catalogRepo     repository.CatalogRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ShopRepo    repository.ShopRepository
	CatalogRepo repository.CatalogRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	defaultPageSize, maxPageSize := 20, 100
	if params.Config != nil && params.Config.Catalog != nil {
		if params.Config.Catalog.DefaultPageSize > 0 {
			defaultPageSize = params.Config.Catalog.DefaultPageSize
		}
		if params.Config.Catalog.MaxPageSize > 0 {
			maxPageSize = params.Config.Catalog.MaxPageSize
		}
	}

	return &catalogService{
		shopRepo:        params.ShopRepo,
		catalogRepo:     params.CatalogRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

// ListShops retrieves all shops currently accepting orders.
func (srv *catalogService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.ListAccepting(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

// ListCategories retrieves all known categories.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// SearchProducts retrieves listings of accepting shops matching the filter.
func (srv *catalogService) SearchProducts(ctx context.Context, input usecase.SearchProductsInput) ([]*entity.ProductInfo, error) {
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = srv.defaultPageSize
	}
	if pageSize > srv.maxPageSize {
		pageSize = srv.maxPageSize
	}
	page := input.Page
	if page < 1 {
		page = 1
	}

	filter := repository.CatalogFilter{
		ShopID:     input.ShopID,
		CategoryID: input.CategoryID,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	}

	listings, err := srv.catalogRepo.SearchListings(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search listings")
	}

	return listings, nil
}
