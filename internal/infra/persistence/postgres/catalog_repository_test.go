package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockGorm opens a gorm connection backed by sqlmock, matching the
// options the shared opener uses in production.
func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestCatalogRepository_UpsertListing_DuplicateUpdatesInPlace(t *testing.T) {
	gormDB, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()
	repo := NewCatalogRepository(gormDB)

	storedID := uuid.New()
	info := &entity.ProductInfo{
		ID:         uuid.New(),
		ProductID:  uuid.New(),
		ShopID:     uuid.New(),
		ExternalID: 4216292,
		Model:      "apple/iphone/xs-max",
		Quantity:   2,
		Price:      decimal.NewFromInt(99000),
		PriceRRC:   decimal.NewFromInt(116990),
	}

	// The insert resolves the duplicate in place instead of erroring, and
	// the stored row keeps its original primary key.
	mock.ExpectQuery(`INSERT INTO "product_infos" .+ ON CONFLICT \("product_id","shop_id","external_id"\) DO UPDATE SET`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(storedID))
	mock.ExpectQuery(`SELECT \* FROM "product_infos" WHERE product_id = \$1 AND shop_id = \$2 AND external_id = \$3`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "product_id", "shop_id", "external_id",
			"model", "quantity", "price", "price_rrc", "created_at", "updated_at",
		}).AddRow(
			storedID, info.ProductID, info.ShopID, info.ExternalID,
			info.Model, info.Quantity, "99000", "116990", time.Now(), time.Now(),
		))

	replaced, err := repo.UpsertListing(context.Background(), info)

	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, storedID, info.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_UpsertListing_FreshRowIsNotAReplacement(t *testing.T) {
	gormDB, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()
	repo := NewCatalogRepository(gormDB)

	info := &entity.ProductInfo{
		ID:         uuid.New(),
		ProductID:  uuid.New(),
		ShopID:     uuid.New(),
		ExternalID: 4216292,
		Quantity:   14,
		Price:      decimal.NewFromInt(110000),
		PriceRRC:   decimal.NewFromInt(116990),
	}

	mock.ExpectQuery(`INSERT INTO "product_infos" .+ ON CONFLICT \("product_id","shop_id","external_id"\) DO UPDATE SET`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(info.ID))
	mock.ExpectQuery(`SELECT \* FROM "product_infos" WHERE product_id = \$1 AND shop_id = \$2 AND external_id = \$3`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "product_id", "shop_id", "external_id", "quantity", "price", "price_rrc",
		}).AddRow(
			info.ID, info.ProductID, info.ShopID, info.ExternalID, 14, "110000", "116990",
		))

	replaced, err := repo.UpsertListing(context.Background(), info)

	require.NoError(t, err)
	assert.False(t, replaced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_FindOrCreateProduct_ExistingPairDoesNotAbort(t *testing.T) {
	gormDB, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()
	repo := NewCatalogRepository(gormDB)

	existingID := uuid.New()

	// A conflicting pair inserts nothing and returns no rows; the
	// follow-up read resolves the winner. No statement fails, so a
	// surrounding transaction stays usable.
	mock.ExpectQuery(`INSERT INTO "products" .+ ON CONFLICT \("name","category_id"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE name = \$1 AND category_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category_id", "created_at"}).
			AddRow(existingID, "Smartphone Apple iPhone XS Max 512GB", int64(224), time.Now()))

	product, err := repo.FindOrCreateProduct(context.Background(), "Smartphone Apple iPhone XS Max 512GB", 224)

	require.NoError(t, err)
	assert.Equal(t, existingID, product.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_FindOrCreateParameter_ExistingNameDoesNotAbort(t *testing.T) {
	gormDB, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()
	repo := NewCatalogRepository(gormDB)

	existingID := uuid.New()

	mock.ExpectQuery(`INSERT INTO "parameters" .+ ON CONFLICT \("name"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "parameters" WHERE name = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(existingID, "Color"))

	parameter, err := repo.FindOrCreateParameter(context.Background(), "Color")

	require.NoError(t, err)
	assert.Equal(t, existingID, parameter.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_DeleteListingParameters(t *testing.T) {
	gormDB, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()
	repo := NewCatalogRepository(gormDB)

	listingID := uuid.New()

	mock.ExpectExec(`DELETE FROM "product_parameters" WHERE product_info_id = \$1`).
		WithArgs(listingID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := repo.DeleteListingParameters(context.Background(), listingID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
