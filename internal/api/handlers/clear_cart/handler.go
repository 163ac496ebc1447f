package clear_cart

import (
	"net/http"

	"github.com/capachica-turismo/reservas-service/internal/api/handlers"
	"github.com/capachica-turismo/reservas-service/internal/api/middleware"
)

const (
	msgCartCleared    = "carrito vaciado correctamente"
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

// Handle DELETE /api/v1/reservas/carrito/vaciar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidSession)
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		h.logger.Error("DELETE /reservas/carrito/vaciar - Failed to clear cart: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /reservas/carrito/vaciar - Cart cleared: user_id=%d", userID)
	handlers.RespondMessage(w, http.StatusOK, msgCartCleared)
}
