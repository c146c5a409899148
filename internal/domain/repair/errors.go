package repair

import "errors"

var (
	// ErrInvalidTransition is returned when the requested status is not
	// reachable from the current one for a non-elevated caller.
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrUnknownStatus is returned for a status value outside the enum.
	ErrUnknownStatus = errors.New("unknown repair status")

	// ErrMissingPrice is returned when delivery is requested but neither a
	// final price nor a quoted price is available.
	ErrMissingPrice = errors.New("final price is required for delivery")

	// ErrMissingLocation is returned when a non-elevated caller rejects a
	// repair without stating where the device ended up.
	ErrMissingLocation = errors.New("device location is required for rejection")

	// ErrPricingFrozen is returned when an edit tries to change the final
	// price or parts captured at delivery.
	ErrPricingFrozen = errors.New("delivered repair pricing is frozen")
)
