package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo_ForwardPath(t *testing.T) {
	assert.True(t, CanTransitionTo(StepCart, StepShipping))
	assert.True(t, CanTransitionTo(StepShipping, StepPayment))
	assert.True(t, CanTransitionTo(StepPayment, StepSuccess))
}

func TestCanTransitionTo_BackwardPath(t *testing.T) {
	assert.True(t, CanTransitionTo(StepShipping, StepCart))
	assert.True(t, CanTransitionTo(StepPayment, StepShipping))
}

func TestCanTransitionTo_NoSkipping(t *testing.T) {
	assert.False(t, CanTransitionTo(StepCart, StepPayment))
	assert.False(t, CanTransitionTo(StepCart, StepSuccess))
	assert.False(t, CanTransitionTo(StepShipping, StepSuccess))
	assert.False(t, CanTransitionTo(StepPayment, StepCart))
}

func TestCanTransitionTo_SuccessIsTerminal(t *testing.T) {
	for _, to := range []CheckoutStep{StepCart, StepShipping, StepPayment, StepSuccess} {
		assert.False(t, CanTransitionTo(StepSuccess, to))
	}
	assert.True(t, StepSuccess.IsTerminal())
	assert.False(t, StepPayment.IsTerminal())
}

func TestShippingDetails_MissingFields(t *testing.T) {
	complete := ShippingDetails{
		Name:    "Aman Singh",
		Email:   "aman@example.com",
		Phone:   "9876543210",
		Address: "42 Battery Lane",
		City:    "Pune",
		State:   "MH",
		Zip:     "411001",
	}
	assert.Empty(t, complete.MissingFields())

	partial := complete
	partial.Phone = ""
	partial.Zip = ""
	assert.Equal(t, []string{"phone", "zip"}, partial.MissingFields())

	assert.Len(t, ShippingDetails{}.MissingFields(), 7)
}

func TestCart_TotalAndCount(t *testing.T) {
	cart := &Cart{
		SessionID: "s1",
		Items: []CartItem{
			{ProductID: "lp-ev-100", Price: 12999, Quantity: 2},
			{ProductID: "lp-home-5", Price: 1499, Quantity: 3},
		},
	}

	assert.Equal(t, float64(12999*2+1499*3), cart.Total())
	assert.Equal(t, 5, cart.Count())

	empty := &Cart{SessionID: "s2"}
	assert.Equal(t, 0.0, empty.Total())
	assert.Equal(t, 0, empty.Count())
}

func TestCart_FindItem(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{ProductID: "lp-ev-100"},
			{ProductID: "lp-solar-15"},
		},
	}

	assert.Equal(t, 1, cart.FindItem("lp-solar-15"))
	assert.Equal(t, -1, cart.FindItem("lp-quantum"))
}
