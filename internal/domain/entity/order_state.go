package entity

// OrderState represents where an order sits in its lifecycle.
type OrderState string

const (
	// OrderStateBasket is the mutable pre-order state. Each user has at
	// most one order in this state at a time.
	OrderStateBasket OrderState = "basket"
	// OrderStateNew is the state right after checkout.
	OrderStateNew OrderState = "new"
	// OrderStateConfirmed means the shop has accepted the order.
	OrderStateConfirmed OrderState = "confirmed"
	// OrderStateAssembled means the goods have been picked and packed.
	OrderStateAssembled OrderState = "assembled"
	// OrderStateSent means the order was handed to delivery.
	OrderStateSent OrderState = "sent"
	// OrderStateDelivered is the successful terminal state.
	OrderStateDelivered OrderState = "delivered"
	// OrderStateCanceled is the unsuccessful terminal state.
	OrderStateCanceled OrderState = "canceled"
)

// String returns the string representation of the OrderState.
func (s OrderState) String() string {
	return string(s)
}

// IsValid checks if the OrderState is a valid value.
func (s OrderState) IsValid() bool {
	switch s {
	case OrderStateBasket, OrderStateNew, OrderStateConfirmed,
		OrderStateAssembled, OrderStateSent, OrderStateDelivered, OrderStateCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderState) IsTerminal() bool {
	return s == OrderStateDelivered || s == OrderStateCanceled
}

// next holds the single forward step of the fulfilment pipeline.
var next = map[OrderState]OrderState{
	OrderStateBasket:    OrderStateNew,
	OrderStateNew:       OrderStateConfirmed,
	OrderStateConfirmed: OrderStateAssembled,
	OrderStateAssembled: OrderStateSent,
	OrderStateSent:      OrderStateDelivered,
}

// CanTransitionTo reports whether an order may move from s to target.
// Orders advance one step at a time, and any non-terminal state may be
// canceled.
func (s OrderState) CanTransitionTo(target OrderState) bool {
	if target == OrderStateCanceled {
		return !s.IsTerminal()
	}

	return next[s] == target
}
