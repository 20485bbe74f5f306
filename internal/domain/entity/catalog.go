package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shop is a supplier storefront. At most one shop is linked to a given
// staff account, and a shop with a nil UserID has no manager yet.
type Shop struct {
	ID        uuid.UUID
	Name      string     // Unique shop name, taken from the price feed header.
	URL       string     // Last feed URL the shop was imported from.
	UserID    *uuid.UUID // Staff account managing this shop, nil if unmanaged.
	Accepting bool       // Whether the shop currently accepts new orders.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category groups products across shops. IDs are assigned by the supplier
// feeds and shared between shops, so they stay plain integers.
type Category struct {
	ID   int64
	Name string
}

// Product is a catalog-wide abstract product, identified by name within
// its category. Concrete per-shop offerings live in ProductInfo.
type Product struct {
	ID         uuid.UUID
	Name       string
	CategoryID int64
	Category   *Category // Populated when loaded with its category.
	CreatedAt  time.Time
}

// ProductInfo is one shop's listing of a product: its stock, pricing and
// shop-local external identifier.
type ProductInfo struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	Product    *Product // Populated when loaded with the abstract product.
	ShopID     uuid.UUID
	Shop       *Shop // Populated when loaded with the owning shop.
	ExternalID int64 // The shop's own identifier from its price feed.
	Model      string
	Quantity   int             // Units currently in stock at the shop.
	Price      decimal.Decimal // Purchase price.
	PriceRRC   decimal.Decimal // Recommended retail price.
	Parameters []ProductParameter
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Parameter is a named product characteristic shared across listings,
// for example "Color" or "Display size".
type Parameter struct {
	ID   uuid.UUID
	Name string
}

// ProductParameter is the value a listing assigns to one parameter.
type ProductParameter struct {
	ID            uuid.UUID
	ProductInfoID uuid.UUID
	ParameterID   uuid.UUID
	Parameter     *Parameter // Populated when loaded with its parameter.
	Value         string
}
