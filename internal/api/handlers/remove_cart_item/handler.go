package remove_cart_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/capachica-turismo/reservas-service/internal/api/handlers"
	"github.com/capachica-turismo/reservas-service/internal/api/middleware"
	cartService "github.com/capachica-turismo/reservas-service/internal/service/cart"
)

const (
	msgItemRemoved    = "servicio eliminado del carrito"
	msgItemNotFound   = "el servicio no se encuentra en el carrito"
	msgInvalidItemID  = "identificador de servicio inválido"
	msgInvalidSession = "sesión no válida"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservas/carrito/servicio/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidSession)
		return
	}

	itemID, err := strconv.ParseInt(mux.Vars(r)["itemId"], 10, 64)
	if err != nil || itemID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	if err := h.service.RemoveItem(r.Context(), userID, itemID); err != nil {
		switch {
		// An item belonging to another user's cart is reported as not
		// found so the endpoint does not leak item existence.
		case errors.Is(err, cartService.ErrItemNotFound),
			errors.Is(err, cartService.ErrCartNotFound),
			errors.Is(err, cartService.ErrAccessDenied):
			h.logger.Warn("DELETE /reservas/carrito/servicio - Item not removable: user_id=%d, item_id=%d, error=%v", userID, itemID, err)
			handlers.RespondNotFound(w, msgItemNotFound)
		default:
			h.logger.Error("DELETE /reservas/carrito/servicio - Failed to remove item: user_id=%d, item_id=%d, error=%v", userID, itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservas/carrito/servicio - Item removed: user_id=%d, item_id=%d", userID, itemID)
	handlers.RespondMessage(w, http.StatusOK, msgItemRemoved)
}
