package cart

import "errors"

var (
	// ErrCartNotFound is returned when the user has no pending cart
	ErrCartNotFound = errors.New("cart.repository: cart not found")

	// ErrItemNotFound is returned when the line item does not exist
	ErrItemNotFound = errors.New("cart.repository: cart item not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("cart.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("cart.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("cart.repository: failed to scan row")
)
