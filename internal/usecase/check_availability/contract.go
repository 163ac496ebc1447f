package check_availability

import (
	"context"
	"time"

	"github.com/capachica-turismo/reservas-service/internal/domain"
)

// CartRepository provides the reservations that may occupy the queried slot
type CartRepository interface {
	GetActiveItemsByServiceAndDate(ctx context.Context, serviceID int64, date time.Time) ([]*domain.CartItem, error)
}

// ServiceRepository provides service reference data (slot capacity)
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Logger is the logging surface the usecase depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
