package cart

import "errors"

var (
	// ErrServiceAlreadyInCart is returned when the service is already a
	// line item of the cart. Detected locally, before any remote call.
	ErrServiceAlreadyInCart = errors.New("cart.store: service already in cart")

	// ErrNotAuthenticated is returned when the API rejects the session
	ErrNotAuthenticated = errors.New("cart.store: not authenticated")

	// ErrRemote is returned when a remote operation fails
	ErrRemote = errors.New("cart.store: remote operation failed")
)
