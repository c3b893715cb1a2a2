package checkout

import "github.com/amansinghakash/legacy-battery/internal/domain"

const (
	// TaxRate is the flat tax applied to every order.
	TaxRate = 0.18

	// FreeShippingThreshold: orders strictly above this subtotal ship free.
	// A subtotal of exactly 10000 still pays the flat fee.
	FreeShippingThreshold = 10000.0

	// ShippingFee is the flat fee below the free-shipping threshold.
	ShippingFee = 500.0
)

// CalculateTotals computes the cost breakdown for a set of line items.
// It is recomputed at every step so no stale total ever survives a cart
// mutation.
func CalculateTotals(items []domain.CartItem) domain.OrderTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	shipping := ShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	tax := subtotal * TaxRate

	return domain.OrderTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}
