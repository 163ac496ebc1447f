// Package pricing computes display totals for cart line items.
// Totals are advisory: the backend remains the source of truth for the
// amounts actually charged.
package pricing

import (
	"math"
	"time"

	"github.com/capachica-turismo/reservas-service/internal/domain"
	"github.com/capachica-turismo/reservas-service/pkg/ptr"
)

// Calculate returns the total price for booking a service, or nil when the
// request cannot be priced (non-positive participant count).
//
// Per-night services (lodging): nights * basePrice * quantity, where nights
// is the ceiling of the day difference between startDate and endDate with a
// minimum of one night. Any other service type is flat-rate and ignores the
// dates entirely.
//
// Unparseable or empty dates on the per-night branch fall back to a single
// night rather than failing. This leniency is intentional and matches the
// historical behaviour the frontend depends on; see DESIGN.md.
func Calculate(service *domain.Service, startDate, endDate string, quantity int) *float64 {
	if quantity <= 0 {
		return nil
	}

	if !service.IsPerNight() {
		return ptr.Ptr(service.BasePrice * float64(quantity))
	}

	nights := nightsBetween(startDate, endDate)
	return ptr.Ptr(float64(nights) * service.BasePrice * float64(quantity))
}

// nightsBetween returns the billable nights between two YYYY-MM-DD dates,
// never less than one.
func nightsBetween(startDate, endDate string) int {
	start, err := time.Parse(domain.DateFormat, startDate)
	if err != nil {
		return 1
	}
	end, err := time.Parse(domain.DateFormat, endDate)
	if err != nil {
		return 1
	}

	nights := int(math.Ceil(end.Sub(start).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}
