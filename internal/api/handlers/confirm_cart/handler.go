package confirm_cart

import (
	"errors"
	"net/http"

	"github.com/capachica-turismo/reservas-service/internal/api/handlers"
	"github.com/capachica-turismo/reservas-service/internal/api/middleware"
	cartService "github.com/capachica-turismo/reservas-service/internal/service/cart"
)

const (
	msgCartNotFound   = "no tienes un carrito de reservas activo"
	msgEmptyCart      = "el carrito está vacío, agrega servicios antes de confirmar"
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

// Handle POST /api/v1/reservas/carrito/confirmar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidSession)
		return
	}

	result, err := h.service.Confirm(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrCartNotFound):
			h.logger.Warn("POST /reservas/carrito/confirmar - No pending cart: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCartNotFound)
		case errors.Is(err, cartService.ErrEmptyCart):
			h.logger.Warn("POST /reservas/carrito/confirmar - Empty cart: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgEmptyCart)
		default:
			h.logger.Error("POST /reservas/carrito/confirmar - Failed to confirm: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservas/carrito/confirmar - Cart confirmed: user_id=%d, code=%s, items=%d",
		userID, result.CodigoReserva, len(result.Servicios))
	handlers.RespondJSON(w, http.StatusOK, result)
}
