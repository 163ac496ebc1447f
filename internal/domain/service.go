package domain

import "strings"

// Service represents a bookable tourist service (servicio) offered by an
// entrepreneur. Reference data owned by the catalog; never mutated here.
type Service struct {
	ID            int64
	EmprendedorID int64
	Name          string
	Type          string // tipo_servicio, drives the pricing rule
	BasePrice     float64
	Currency      string
	Latitude      *float64
	Longitude     *float64
	Capacity      int // concurrent bookings the service admits per slot
}

// IsPerNight returns true when the service is priced per night
// (lodging type services) instead of flat-rate.
func (s *Service) IsPerNight() bool {
	return strings.EqualFold(strings.TrimSpace(s.Type), ServiceTypeLodging)
}

// SlotCapacity returns the number of concurrent reservations the service
// admits; services without an explicit capacity admit one.
func (s *Service) SlotCapacity() int {
	if s.Capacity <= 0 {
		return DefaultServiceCapacity
	}
	return s.Capacity
}
