package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. The partial unique index lets a
// user keep many placed orders but only one order in the basket state,
// which is what makes concurrent basket creation converge on one row.
type OrderModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;index;uniqueIndex:uniq_active_basket,where:state = 'basket'"`
	User      *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	State     string        `gorm:"type:varchar(16);not null;default:'basket';index"`
	ContactID *uuid.UUID    `gorm:"type:uuid"`
	Contact   *ContactModel `gorm:"foreignKey:ContactID;constraint:OnDelete:SET NULL"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table, one line of an order.
// An order references a given listing at most once.
type OrderItemModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uniq_order_listing;index"`
	Order         *OrderModel       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ProductInfoID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uniq_order_listing"`
	ProductInfo   *ProductInfoModel `gorm:"foreignKey:ProductInfoID;constraint:OnDelete:CASCADE"`
	Quantity      int               `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
