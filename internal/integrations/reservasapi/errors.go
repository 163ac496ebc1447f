package reservasapi

import "errors"

var (
	// ErrUnauthorized is returned when the API answers 401: the token is
	// missing, expired or rejected
	ErrUnauthorized = errors.New("reservasapi: unauthorized")

	// ErrRequestFailed is returned when the API answers with a failure
	// envelope; the server message is attached to the error text
	ErrRequestFailed = errors.New("reservasapi: request failed")

	// ErrInvalidResponse is returned when the response body cannot be decoded
	ErrInvalidResponse = errors.New("reservasapi: invalid response")

	// ErrInternal is returned when the request could not be built or sent
	ErrInternal = errors.New("reservasapi: internal error")
)
