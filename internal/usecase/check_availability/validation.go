package check_availability

import (
	"fmt"

	"github.com/capachica-turismo/reservas-service/internal/domain"
	"github.com/capachica-turismo/reservas-service/pkg/types"
)

// validateRequest rejects malformed queries before any storage access
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return ErrInvalidTimeRange
	}

	return nil
}

// countOverlappingItems counts active reservations whose time window
// actually overlaps [start, end). Half-open intervals: a reservation ending
// exactly when the window starts (or starting exactly when it ends) does
// not conflict.
func countOverlappingItems(start, end types.TimeString, items []*domain.CartItem) int {
	count := 0

	for _, item := range items {
		if !item.IsActive() {
			continue
		}

		itemStart := item.StartTime
		itemEnd := item.EndTime
		if itemEnd.IsZero() {
			// Fall back to the stored duration for items recorded without
			// an explicit end time.
			computed, err := itemStart.AddMinutes(item.DurationMin)
			if err != nil {
				continue
			}
			itemEnd = computed
		}

		if itemStart.IsBefore(end) && start.IsBefore(itemEnd) {
			count++
		}
	}

	return count
}
