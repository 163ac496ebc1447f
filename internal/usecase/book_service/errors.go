package book_service

import "errors"

var (
	// ErrNotAuthenticated is returned after redirecting an anonymous user
	// to login. Nothing else has happened: no network call, no cart change.
	ErrNotAuthenticated = errors.New("book_service: not authenticated")

	// ErrInvalidInput is returned when the booking form data is malformed
	ErrInvalidInput = errors.New("book_service: invalid input data")

	// ErrInvalidTimeRange is returned when the end time is not strictly
	// after the start time
	ErrInvalidTimeRange = errors.New("book_service: end time must be after start time")

	// ErrSlotNotAvailable is returned when the requested slot is taken
	ErrSlotNotAvailable = errors.New("book_service: slot not available")

	// ErrServiceAlreadyInCart is returned when the service already sits in
	// the cart
	ErrServiceAlreadyInCart = errors.New("book_service: service already in cart")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("book_service: internal error")
)
