package book_service

import (
	"fmt"
	"time"

	"github.com/capachica-turismo/reservas-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.Service == nil || req.Service.ID <= 0 {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.FechaInicio); err != nil {
		return fmt.Errorf("%w: invalid start date %q", ErrInvalidInput, req.FechaInicio)
	}

	if req.FechaFin != "" {
		if _, err := time.Parse(domain.DateFormat, req.FechaFin); err != nil {
			return fmt.Errorf("%w: invalid end date %q", ErrInvalidInput, req.FechaFin)
		}
	}

	if err := req.HoraInicio.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, req.HoraInicio)
	}
	if err := req.HoraFin.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time %q", ErrInvalidInput, req.HoraFin)
	}
	if !req.HoraInicio.IsBefore(req.HoraFin) {
		return ErrInvalidTimeRange
	}

	if req.Cantidad <= 0 || req.Cantidad > domain.MaxQuantity {
		return fmt.Errorf("%w: quantity must be between 1 and %d", ErrInvalidInput, domain.MaxQuantity)
	}

	if req.NotasCliente != nil && len(*req.NotasCliente) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
