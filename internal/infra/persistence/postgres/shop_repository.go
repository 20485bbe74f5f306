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

// shopRepository implements the domain's ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// FindByID retrieves a shop by its unique ID.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := repo.db.WithContext(ctx).First(&shopM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return toShopDomain(&shopM), nil
}

// FindByName retrieves a shop by its unique name.
func (repo *shopRepository) FindByName(ctx context.Context, name string) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := repo.db.WithContext(ctx).First(&shopM, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by name")
	}

	return toShopDomain(&shopM), nil
}

// FindByUserID retrieves the shop managed by a given staff account.
func (repo *shopRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := repo.db.WithContext(ctx).First(&shopM, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by user")
	}

	return toShopDomain(&shopM), nil
}

// Create persists a new shop.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateShop
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// Update modifies an existing shop.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Save(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateShop
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update shop")
	}

	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// UpdateAccepting flips whether the shop accepts new orders.
func (repo *shopRepository) UpdateAccepting(ctx context.Context, id uuid.UUID, accepting bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", id).
		Update("accepting", accepting)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// ListAccepting retrieves all shops that currently accept orders.
func (repo *shopRepository) ListAccepting(ctx context.Context) ([]*entity.Shop, error) {
	var shopMs []model.ShopModel
	err := repo.db.WithContext(ctx).
		Where("accepting = ?", true).
		Order("name").
		Find(&shopMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopMs))
	for i := range shopMs {
		shops = append(shops, toShopDomain(&shopMs[i]))
	}

	return shops, nil
}

// LinkCategories replaces the shop's category links with the given set.
func (repo *shopRepository) LinkCategories(ctx context.Context, shopID uuid.UUID, categoryIDs []int64) error {
	db := repo.db.WithContext(ctx)

	if err := db.Delete(&model.ShopCategoryModel{}, "shop_id = ?", shopID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to unlink shop categories")
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]model.ShopCategoryModel, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		links = append(links, model.ShopCategoryModel{ShopID: shopID, CategoryID: categoryID})
	}

	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to link shop categories")
	}

	return nil
}
