package cart

import (
	"context"

	"github.com/capachica-turismo/reservas-service/internal/integrations/reservasapi"
)

// Client remote cart API surface the store depends on
type Client interface {
	GetCart(ctx context.Context) (*reservasapi.Cart, error)
	AddItem(ctx context.Context, req reservasapi.AddItemRequest) (*reservasapi.AddItemResult, error)
	RemoveItem(ctx context.Context, itemID int64) error
	Confirm(ctx context.Context) (*reservasapi.Cart, error)
	Empty(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
