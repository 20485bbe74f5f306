package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderState_IsValid(t *testing.T) {
	for _, s := range []OrderState{
		OrderStateBasket, OrderStateNew, OrderStateConfirmed,
		OrderStateAssembled, OrderStateSent, OrderStateDelivered, OrderStateCanceled,
	} {
		assert.True(t, s.IsValid(), s.String())
	}

	assert.False(t, OrderState("shipped").IsValid())
	assert.False(t, OrderState("").IsValid())
}

func TestOrderState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderState
		to   OrderState
		want bool
	}{
		{name: "checkout", from: OrderStateBasket, to: OrderStateNew, want: true},
		{name: "confirm", from: OrderStateNew, to: OrderStateConfirmed, want: true},
		{name: "assemble", from: OrderStateConfirmed, to: OrderStateAssembled, want: true},
		{name: "send", from: OrderStateAssembled, to: OrderStateSent, want: true},
		{name: "deliver", from: OrderStateSent, to: OrderStateDelivered, want: true},
		{name: "skip a step", from: OrderStateNew, to: OrderStateSent, want: false},
		{name: "move backwards", from: OrderStateSent, to: OrderStateConfirmed, want: false},
		{name: "cancel new", from: OrderStateNew, to: OrderStateCanceled, want: true},
		{name: "cancel in flight", from: OrderStateAssembled, to: OrderStateCanceled, want: true},
		{name: "cancel delivered", from: OrderStateDelivered, to: OrderStateCanceled, want: false},
		{name: "cancel canceled", from: OrderStateCanceled, to: OrderStateCanceled, want: false},
		{name: "revive delivered", from: OrderStateDelivered, to: OrderStateNew, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderState_IsTerminal(t *testing.T) {
	assert.True(t, OrderStateDelivered.IsTerminal())
	assert.True(t, OrderStateCanceled.IsTerminal())
	assert.False(t, OrderStateBasket.IsTerminal())
	assert.False(t, OrderStateSent.IsTerminal())
}
