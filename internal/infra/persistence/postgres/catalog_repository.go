package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalogRepository implements the domain's CatalogRepository interface using GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// UpsertCategories inserts the given categories, refreshing names of
// feed-assigned IDs that already exist.
func (repo *catalogRepository) UpsertCategories(ctx context.Context, categories []entity.Category) error {
	if len(categories) == 0 {
		return nil
	}

	categoryMs := make([]model.CategoryModel, 0, len(categories))
	for _, category := range categories {
		categoryMs = append(categoryMs, model.CategoryModel{ID: category.ID, Name: category.Name})
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(&categoryMs).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert categories")
	}

	return nil
}

// ListCategories retrieves all known categories.
func (repo *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, toCategoryDomain(&categoryMs[i]))
	}

	return categories, nil
}

// FindOrCreateProduct returns the abstract product with the given name and
// category, creating it if absent. The insert does nothing on conflict and
// the winning row is re-read, so the surrounding transaction never aborts
// on an existing pair.
func (repo *catalogRepository) FindOrCreateProduct(ctx context.Context, name string, categoryID int64) (*entity.Product, error) {
	productM := model.ProductModel{ID: uuid.New(), Name: name, CategoryID: categoryID}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "category_id"}},
			DoNothing: true,
		}).
		Create(&productM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	var found model.ProductModel
	err = repo.db.WithContext(ctx).
		First(&found, "name = ? AND category_id = ?", name, categoryID).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}

	return toProductDomain(&found), nil
}

// FindOrCreateParameter returns the named parameter, creating it if absent.
// Same do-nothing-then-re-read shape as FindOrCreateProduct.
func (repo *catalogRepository) FindOrCreateParameter(ctx context.Context, name string) (*entity.Parameter, error) {
	parameterM := model.ParameterModel{ID: uuid.New(), Name: name}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&parameterM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create parameter")
	}

	var found model.ParameterModel
	err = repo.db.WithContext(ctx).First(&found, "name = ?", name).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load parameter")
	}

	return toParameterDomain(&found), nil
}

// DeleteShopListings removes every listing of a shop. Dependent rows go
// away through ON DELETE CASCADE.
func (repo *catalogRepository) DeleteShopListings(ctx context.Context, shopID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.ProductInfoModel{}, "shop_id = ?", shopID).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete shop listings")
	}

	return nil
}

// UpsertListing persists a per-shop listing. A conflicting
// (product, shop, external_id) row is updated in place, so a feed carrying
// the same good twice ends up with the later occurrence. The stored row is
// re-read because on conflict it keeps its original primary key.
func (repo *catalogRepository) UpsertListing(ctx context.Context, info *entity.ProductInfo) (bool, error) {
	infoM := fromProductInfoDomain(info)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}, {Name: "shop_id"}, {Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"model", "quantity", "price", "price_rrc", "updated_at",
			}),
		}).
		Create(infoM).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to upsert listing")
	}

	var found model.ProductInfoModel
	err = repo.db.WithContext(ctx).
		First(&found, "product_id = ? AND shop_id = ? AND external_id = ?",
			info.ProductID, info.ShopID, info.ExternalID).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to load listing")
	}

	replaced := found.ID != info.ID
	info.ID = found.ID
	info.CreatedAt = found.CreatedAt
	info.UpdatedAt = found.UpdatedAt

	return replaced, nil
}

// CreateListingParameter persists one parameter value of a listing.
func (repo *catalogRepository) CreateListingParameter(ctx context.Context, param *entity.ProductParameter) error {
	paramM := &model.ProductParameterModel{
		ID:            param.ID,
		ProductInfoID: param.ProductInfoID,
		ParameterID:   param.ParameterID,
		Value:         param.Value,
	}

	if err := repo.db.WithContext(ctx).Create(paramM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing parameter")
	}

	return nil
}

// DeleteListingParameters removes all parameter values of one listing.
func (repo *catalogRepository) DeleteListingParameters(ctx context.Context, listingID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.ProductParameterModel{}, "product_info_id = ?", listingID).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete listing parameters")
	}

	return nil
}

// SearchListings retrieves listings of accepting shops matching the filter.
func (repo *catalogRepository) SearchListings(ctx context.Context, filter repository.CatalogFilter) ([]*entity.ProductInfo, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductInfoModel{}).
		Joins("JOIN shops ON shops.id = product_infos.shop_id").
		Where("shops.accepting = ?", true)

	if filter.ShopID != nil {
		query = query.Where("product_infos.shop_id = ?", *filter.ShopID)
	}
	if filter.CategoryID != nil {
		query = query.
			Joins("JOIN products ON products.id = product_infos.product_id").
			Where("products.category_id = ?", *filter.CategoryID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var infoMs []model.ProductInfoModel
	err := query.
		Preload("Product.Category").
		Preload("Shop").
		Preload("Parameters.Parameter").
		Order("product_infos.created_at DESC").
		Find(&infoMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search listings")
	}

	listings := make([]*entity.ProductInfo, 0, len(infoMs))
	for i := range infoMs {
		listings = append(listings, toProductInfoDomain(&infoMs[i]))
	}

	return listings, nil
}
