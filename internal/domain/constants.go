package domain

// Service type markers
const (
	// ServiceTypeLodging marks per-night priced services; everything else
	// is flat-rate.
	ServiceTypeLodging = "alojamiento"

	DefaultServiceCapacity = 1
)

// Business validation constants
const (
	MaxQuantity        = 100
	MaxNotesLength     = 500
	MinDurationMinutes = 1
	MaxDurationMinutes = 1440 // full day
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CartCodePrefix prefix for generated reservation codes (codigo_reserva)
const CartCodePrefix = "RES-"
