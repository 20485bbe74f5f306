package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShopModel mirrors the 'shops' table. A shop is claimed by at most one
// staff account and keeps the URL of its last imported price feed.
type ShopModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string     `gorm:"type:varchar(100);unique;not null"`
	URL       string     `gorm:"type:varchar(512)"`
	UserID    *uuid.UUID `gorm:"type:uuid;unique"`
	User      *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Accepting bool       `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Categories []CategoryModel `gorm:"many2many:shop_categories"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// CategoryModel mirrors the 'categories' table. IDs are assigned by the
// supplier feeds, so the primary key does not auto increment.
type CategoryModel struct {
	ID   int64  `gorm:"primary_key;autoIncrement:false"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ShopCategoryModel is the join table linking shops to the categories they
// offer listings in.
type ShopCategoryModel struct {
	ShopID     uuid.UUID `gorm:"type:uuid;primary_key"`
	CategoryID int64     `gorm:"primary_key"`
}

// TableName explicitly sets the table name for GORM.
func (ShopCategoryModel) TableName() string {
	return "shop_categories"
}

// ProductModel mirrors the 'products' table, the catalog-wide abstract
// product. A product name appears at most once per category.
type ProductModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name       string         `gorm:"type:varchar(200);not null;uniqueIndex:uniq_product_name_category"`
	CategoryID int64          `gorm:"not null;uniqueIndex:uniq_product_name_category;index"`
	Category   *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductInfoModel mirrors the 'product_infos' table, one shop's listing
// of a product. A shop lists a product under a given external ID once.
type ProductInfoModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uniq_listing;index"`
	Product    *ProductModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	ShopID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uniq_listing;index"`
	Shop       *ShopModel      `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
	ExternalID int64           `gorm:"not null;uniqueIndex:uniq_listing"`
	Model      string          `gorm:"type:varchar(200)"`
	Quantity   int             `gorm:"not null;default:0"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PriceRRC   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Parameters []ProductParameterModel `gorm:"foreignKey:ProductInfoID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductInfoModel) TableName() string {
	return "product_infos"
}

// ParameterModel mirrors the 'parameters' table of shared characteristic names.
type ParameterModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ParameterModel) TableName() string {
	return "parameters"
}

// ProductParameterModel mirrors the 'product_parameters' table. A listing
// carries at most one value per parameter.
type ProductParameterModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductInfoID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uniq_listing_parameter;index"`
	ProductInfo   *ProductInfoModel `gorm:"foreignKey:ProductInfoID;constraint:OnDelete:CASCADE"`
	ParameterID   uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uniq_listing_parameter"`
	Parameter     *ParameterModel   `gorm:"foreignKey:ParameterID;constraint:OnDelete:CASCADE"`
	Value         string            `gorm:"type:varchar(200);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductParameterModel) TableName() string {
	return "product_parameters"
}
