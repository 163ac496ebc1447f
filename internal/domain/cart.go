package domain

import (
	"time"

	"github.com/capachica-turismo/reservas-service/pkg/types"
)

// CartStatus represents the status of a cart (reserva)
type CartStatus string

const (
	CartStatusPending   CartStatus = "pendiente"
	CartStatusConfirmed CartStatus = "confirmada"
	CartStatusCancelled CartStatus = "cancelada"
)

// ItemStatus represents the status of a cart line item (reserva_servicio)
type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "pendiente"
	ItemStatusConfirmed ItemStatus = "confirmado"
	ItemStatusCancelled ItemStatus = "cancelado"
)

// Cart is a user's in-progress reservation (carrito): a pending reserva
// with its ordered line items. Created lazily on the first add and owned
// by exactly one user.
type Cart struct {
	ID     int64
	UserID int64
	Code   string // codigo_reserva, assigned at creation
	Status CartStatus
	Items  []*CartItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true while the cart has not been confirmed or cancelled
func (c *Cart) IsPending() bool {
	return c.Status == CartStatusPending
}

// HasService returns true if the cart already holds a line item for the
// given service. Duplicate adds are rejected, never merged.
func (c *Cart) HasService(serviceID int64) bool {
	for _, item := range c.Items {
		if item.ServiceID == serviceID {
			return true
		}
	}
	return false
}

// CartItem is one reserved service within a cart, with its own dates,
// times and participant count.
type CartItem struct {
	ID            int64
	CartID        int64
	ServiceID     int64
	EmprendedorID int64
	StartDate     time.Time
	EndDate       *time.Time // nil for single-day bookings
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationMin   int
	Quantity      int // participants (cantidad)
	ClientNotes   *string
	Status        ItemStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true unless the item has been cancelled.
// Only active items occupy availability slots.
func (i *CartItem) IsActive() bool {
	return i.Status != ItemStatusCancelled
}
