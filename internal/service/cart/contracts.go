package cart

import (
	"context"

	"github.com/capachica-turismo/reservas-service/internal/domain"
)

// CartRepository is the slice of the storage layer the service needs
type CartRepository interface {
	GetPendingByUser(ctx context.Context, userID int64) (*domain.Cart, error)
	GetItemByID(ctx context.Context, itemID int64) (*domain.CartItem, error)
	DeleteItem(ctx context.Context, itemID int64) error
	DeleteItemsByCart(ctx context.Context, cartID int64) error
	Delete(ctx context.Context, cartID int64) error
	UpdateStatus(ctx context.Context, cartID int64, status domain.CartStatus) error
	UpdateItemsStatus(ctx context.Context, cartID int64, status domain.ItemStatus) error
}

// Logger is the logging surface the service depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
