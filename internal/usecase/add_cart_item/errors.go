package add_cart_item

import "errors"

var (
	// ErrInvalidInput is returned when the request fails local validation
	ErrInvalidInput = errors.New("add_cart_item: invalid input data")

	// ErrInvalidTimeRange is returned when the end time is not strictly
	// after the start time
	ErrInvalidTimeRange = errors.New("add_cart_item: end time must be after start time")

	// ErrInvalidDuration is returned when a supplied duration does not
	// match the wall-clock difference between start and end times
	ErrInvalidDuration = errors.New("add_cart_item: duration does not match time range")

	// ErrInvalidDate is returned when the booking date is in the past
	ErrInvalidDate = errors.New("add_cart_item: booking date is in the past")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("add_cart_item: service not found")

	// ErrDuplicateService is returned when the pending cart already holds
	// a line item for the same service. Duplicates are rejected, not merged.
	ErrDuplicateService = errors.New("add_cart_item: service already in cart")

	// ErrSlotNotAvailable is returned when the requested window conflicts
	// with existing reservations
	ErrSlotNotAvailable = errors.New("add_cart_item: slot is not available")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("add_cart_item: internal error")
)
