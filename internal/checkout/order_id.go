package checkout

import "math/rand"

const (
	orderIDPrefix  = "LB"
	orderIDLength  = 9
	orderIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewOrderID generates an order identifier of the form LB + 9 uppercase
// alphanumerics. It only needs to be visually distinct per order, not
// cryptographically random.
func NewOrderID() string {
	b := make([]byte, orderIDLength)
	for i := range b {
		b[i] = orderIDCharset[rand.Intn(len(orderIDCharset))]
	}
	return orderIDPrefix + string(b)
}
