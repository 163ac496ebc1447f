package check_availability

import "errors"

var (
	// ErrInvalidInput is returned when the query parameters are malformed
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInvalidTimeRange is returned when the end time is not strictly
	// after the start time. Rejected locally, before any storage query.
	ErrInvalidTimeRange = errors.New("check_availability: end time must be after start time")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("check_availability: service not found")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("check_availability: internal error")
)
