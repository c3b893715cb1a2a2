package domain

import "time"

// CheckoutStep is one stage of the linear checkout flow.
type CheckoutStep string

const (
	StepCart     CheckoutStep = "cart"
	StepShipping CheckoutStep = "shipping"
	StepPayment  CheckoutStep = "payment"
	StepSuccess  CheckoutStep = "success"
)

// IsTerminal reports whether no further transitions are possible.
func (s CheckoutStep) IsTerminal() bool {
	return s == StepSuccess
}

// String representation (for logging)
func (s CheckoutStep) String() string {
	return string(s)
}

// IsForward reports whether moving from s to next advances the flow.
func (s CheckoutStep) IsForward(next CheckoutStep) bool {
	order := map[CheckoutStep]int{
		StepCart:     0,
		StepShipping: 1,
		StepPayment:  2,
		StepSuccess:  3,
	}
	return order[next] > order[s]
}

var checkoutTransitions = map[CheckoutStep][]CheckoutStep{
	StepCart:     {StepShipping},
	StepShipping: {StepPayment, StepCart},
	StepPayment:  {StepSuccess, StepShipping},
	StepSuccess:  {},
}

// CanTransitionTo reports whether the checkout flow allows moving from one
// step directly to another. Forward moves go one step at a time; backward
// moves out of shipping and payment are unconditional; success is terminal.
func CanTransitionTo(from, to CheckoutStep) bool {
	for _, next := range checkoutTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PaymentMethod is collected during checkout but intentionally not validated:
// payment is simulated and always succeeds.
type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetBanking PaymentMethod = "netbanking"
)

// ShippingDetails is the in-progress shipping/contact form of a checkout.
type ShippingDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// MissingFields returns the names of required fields that are still empty.
// Only non-emptiness is checked; format validation is out of scope.
func (d ShippingDetails) MissingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"email", d.Email},
		{"phone", d.Phone},
		{"address", d.Address},
		{"city", d.City},
		{"state", d.State},
		{"zip", d.Zip},
	}

	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// OrderTotals is the cost breakdown shown at every checkout step.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Order is the result of a successful checkout.
type Order struct {
	ID        string          `json:"id"`
	SessionID string          `json:"session_id"`
	Items     []CartItem      `json:"items"`
	Shipping  ShippingDetails `json:"shipping"`
	Payment   PaymentMethod   `json:"payment_method"`
	Totals    OrderTotals     `json:"totals"`
	PlacedAt  time.Time       `json:"placed_at"`
}
