package checkout

import "errors"

var (
	// ErrEmptyCart is returned when checkout is entered with nothing to buy.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

	// ErrIllegalTransition is returned for a step change the flow forbids.
	ErrIllegalTransition = errors.New("illegal transition of checkout step")

	// ErrNotStarted is returned when a session has no checkout in progress.
	ErrNotStarted = errors.New("checkout not started for session")
)
