package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/capachica-turismo/reservas-service/internal/domain"
	serviceRepo "github.com/capachica-turismo/reservas-service/internal/infra/storage/service"
	"github.com/capachica-turismo/reservas-service/pkg/ptr"
)

const reasonSlotTaken = "el horario seleccionado ya no está disponible"

// UseCase answers whether a service's time slot is free of conflicting
// reservations. Advisory for browsing clients; the add-to-cart usecase
// repeats the check inside a serializable transaction before writing.
type UseCase struct {
	cartRepo    CartRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewUseCase creates the availability usecase
func NewUseCase(cartRepo CartRepository, serviceRepo ServiceRepository, logger Logger) *UseCase {
	return &UseCase{
		cartRepo:    cartRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute validates the window locally, then checks every date of the
// requested range against existing reservations.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	duration, err := req.StartTime.MinutesUntil(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute duration: %v", ErrInternal, err)
	}

	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CheckAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	capacity := svc.SlotCapacity()

	for _, date := range datesToCheck(req) {
		items, err := uc.cartRepo.GetActiveItemsByServiceAndDate(ctx, req.ServiceID, date)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to get reservations for service id=%d date=%s: %v",
				req.ServiceID, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		overlapping := countOverlappingItems(req.StartTime, req.EndTime, items)
		if overlapping >= capacity {
			uc.logger.Info("CheckAvailability: service id=%d date=%s %s-%s not available, %d/%d spots taken",
				req.ServiceID, date.Format(domain.DateFormat), req.StartTime, req.EndTime, overlapping, capacity)
			return &Response{
				Available:       false,
				Reason:          ptr.Ptr(reasonSlotTaken),
				DurationMinutes: duration,
			}, nil
		}
	}

	uc.logger.Info("CheckAvailability: service id=%d %s-%s available",
		req.ServiceID, req.StartTime, req.EndTime)

	return &Response{
		Available:       true,
		DurationMinutes: duration,
	}, nil
}

// datesToCheck expands the request into the concrete dates to verify
func datesToCheck(req *Request) []time.Time {
	dates := []time.Time{req.StartDate}
	if req.EndDate == nil {
		return dates
	}

	for d := req.StartDate.AddDate(0, 0, 1); !d.After(*req.EndDate); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
