package add_cart_item

import (
	"context"
	"time"

	"github.com/capachica-turismo/reservas-service/internal/domain"
)

// CartRepository is the slice of the cart storage the usecase needs
type CartRepository interface {
	GetPendingByUser(ctx context.Context, userID int64) (*domain.Cart, error)
	Create(ctx context.Context, cart *domain.Cart) (*domain.Cart, error)
	AddItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	GetActiveItemsByServiceAndDate(ctx context.Context, serviceID int64, date time.Time) ([]*domain.CartItem, error)
}

// ServiceRepository provides service reference data
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TransactionManager runs the availability check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the usecase depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
