package get_cart

import (
	"errors"
	"net/http"

	"github.com/capachica-turismo/reservas-service/internal/api/handlers"
	"github.com/capachica-turismo/reservas-service/internal/api/middleware"
	cartService "github.com/capachica-turismo/reservas-service/internal/service/cart"
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

// Handle GET /api/v1/reservas/carrito
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "sesión no válida")
		return
	}

	result, err := h.service.GetCart(r.Context(), userID)
	if err != nil {
		// A user without a pending cart simply has an empty cart; the
		// frontend treats null data as "no cart yet".
		if errors.Is(err, cartService.ErrCartNotFound) {
			h.logger.Info("GET /reservas/carrito - No pending cart: user_id=%d", userID)
			handlers.RespondJSON(w, http.StatusOK, nil)
			return
		}

		h.logger.Error("GET /reservas/carrito - Failed to get cart: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservas/carrito - Cart retrieved: user_id=%d, items=%d", userID, len(result.Servicios))
	handlers.RespondJSON(w, http.StatusOK, result)
}
