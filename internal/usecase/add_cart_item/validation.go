package add_cart_item

import (
	"fmt"
	"time"

	"github.com/capachica-turismo/reservas-service/internal/domain"
	"github.com/capachica-turismo/reservas-service/pkg/types"
)

// validateRequest rejects malformed requests before any storage access
func validateRequest(req *Request, now time.Time) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	if req.Quantity > domain.MaxQuantity {
		return fmt.Errorf("%w: quantity must not exceed %d", ErrInvalidInput, domain.MaxQuantity)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	if isDateInPast(req.StartDate, now) {
		return ErrInvalidDate
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

	if req.ClientNotes != nil && len(*req.ClientNotes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// resolveDuration computes the duration from the time range and verifies a
// supplied duration against it. A duration may only be supplied alone when
// it matches the wall-clock difference.
func resolveDuration(req *Request) (int, error) {
	computed, err := req.StartTime.MinutesUntil(req.EndTime)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to compute duration: %v", ErrInternal, err)
	}

	if computed < domain.MinDurationMinutes || computed > domain.MaxDurationMinutes {
		return 0, fmt.Errorf("%w: duration of %d minutes is out of range", ErrInvalidInput, computed)
	}

	if req.DurationMinutes != nil && *req.DurationMinutes != computed {
		return 0, fmt.Errorf("%w: supplied %d, time range spans %d minutes",
			ErrInvalidDuration, *req.DurationMinutes, computed)
	}

	return computed, nil
}

// countOverlappingItems counts active reservations overlapping [start, end).
// Half-open intervals: back-to-back reservations never conflict.
func countOverlappingItems(start, end types.TimeString, items []*domain.CartItem) int {
	count := 0

	for _, item := range items {
		if !item.IsActive() {
			continue
		}

		itemStart := item.StartTime
		itemEnd := item.EndTime
		if itemEnd.IsZero() {
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

// isDateInPast compares calendar dates, ignoring the time of day
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
