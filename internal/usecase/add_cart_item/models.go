package add_cart_item

import (
	"time"

	"github.com/capachica-turismo/reservas-service/internal/service/cart/models"
	"github.com/capachica-turismo/reservas-service/pkg/types"
)

// Request add-to-cart request. EndDate is nil for single-day bookings;
// DurationMinutes may be supplied explicitly but must then agree with the
// time range.
type Request struct {
	UserID          int64
	ServiceID       int64
	EmprendedorID   int64
	StartDate       time.Time
	EndDate         *time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes *int
	Quantity        int
	ClientNotes     *string
}

// Response the created line item plus the server-computed display total.
// Total is nil when the request cannot be priced.
type Response struct {
	Item     models.CartItemResponse
	CartCode string
	Total    *float64
	Currency string
}
