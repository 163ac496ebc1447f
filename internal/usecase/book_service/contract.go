package book_service

import (
	"context"

	"github.com/capachica-turismo/reservas-service/internal/integrations/reservasapi"
)

// Auth answers whether the user has a usable session
type Auth interface {
	IsLoggedIn() bool
}

// Navigator sends the user to the login screen, remembering where to
// come back to
type Navigator interface {
	RedirectToLogin(returnTo string)
}

// AvailabilityChecker remote availability check
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, query reservasapi.AvailabilityQuery) (*reservasapi.AvailabilityResult, error)
}

// CartStore local cart mirror the booking lands in
type CartStore interface {
	HasService(serviceID int64) bool
	Add(ctx context.Context, req reservasapi.AddItemRequest) (*reservasapi.AddItemResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
