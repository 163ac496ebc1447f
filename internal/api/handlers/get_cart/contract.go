package get_cart

import (
	"context"

	"github.com/capachica-turismo/reservas-service/internal/service/cart/models"
)

type CartService interface {
	GetCart(ctx context.Context, userID int64) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
