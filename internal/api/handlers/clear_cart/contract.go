package clear_cart

import "context"

type CartService interface {
	Clear(ctx context.Context, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
