package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a buyer's order. An order in the basket state is the user's
// active basket; checkout moves it to the new state and it then advances
// through the fulfilment states below.
type Order struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	State     OrderState
	ContactID *uuid.UUID // Delivery contact, set at checkout.
	Contact   *Contact   // Populated when loaded with its contact.
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total sums quantity times purchase price over the loaded items.
// Items without a loaded listing contribute nothing.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		item := &o.Items[i]
		if item.ProductInfo == nil {
			continue
		}
		line := item.ProductInfo.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}

	return total
}

// OrderItem is one line of an order, referencing a shop listing.
// An order holds at most one line per listing.
type OrderItem struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	ProductInfoID uuid.UUID
	ProductInfo   *ProductInfo // Populated when loaded with the listing.
	Quantity      int
}
