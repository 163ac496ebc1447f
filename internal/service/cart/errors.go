package cart

import "errors"

var (
	// ErrCartNotFound is returned when the user has no pending cart
	ErrCartNotFound = errors.New("cart.service: cart not found")

	// ErrItemNotFound is returned when the line item does not exist
	ErrItemNotFound = errors.New("cart.service: cart item not found")

	// ErrAccessDenied is returned when the item belongs to another user's cart
	ErrAccessDenied = errors.New("cart.service: access denied")

	// ErrEmptyCart is returned when confirming a cart with no items
	ErrEmptyCart = errors.New("cart.service: cart is empty")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("cart.service: internal error")
)
