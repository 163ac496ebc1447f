package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/capachica-turismo/reservas-service/internal/api/handlers"
	"github.com/capachica-turismo/reservas-service/internal/api/middleware"
	addCartItem "github.com/capachica-turismo/reservas-service/internal/usecase/add_cart_item"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidDateTime    = "formato de fecha u hora no válido, se espera YYYY-MM-DD y HH:MM"
	msgInvalidInput       = "datos de la reserva no válidos"
	msgInvalidTimeRange   = "la hora de fin debe ser posterior a la hora de inicio"
	msgInvalidDuration    = "la duración no coincide con el rango horario"
	msgInvalidDate        = "la fecha de la reserva no es válida"
	msgServiceNotFound    = "servicio no encontrado"
	msgDuplicateService   = "el servicio ya está en el carrito"
	msgSlotNotAvailable   = "el horario seleccionado ya no está disponible"
)

type Handler struct {
	useCase AddCartItemUseCase
	logger  Logger
}

func NewHandler(useCase AddCartItemUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservas/carrito/agregar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "sesión no válida")
		return
	}

	var req AddCartItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservas/carrito/agregar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservas/carrito/agregar - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, addCartItem.ErrDuplicateService):
			h.logger.Warn("POST /reservas/carrito/agregar - Duplicate service: user_id=%d, servicio_id=%d",
				userID, req.ServicioID)
			handlers.RespondConflict(w, msgDuplicateService)

		case errors.Is(err, addCartItem.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservas/carrito/agregar - Slot not available: user_id=%d, servicio_id=%d",
				userID, req.ServicioID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, addCartItem.ErrServiceNotFound):
			h.logger.Warn("POST /reservas/carrito/agregar - Service not found: servicio_id=%d", req.ServicioID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, addCartItem.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, addCartItem.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, addCartItem.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, addCartItem.ErrInvalidInput):
			h.logger.Warn("POST /reservas/carrito/agregar - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservas/carrito/agregar - Failed to add item: user_id=%d, servicio_id=%d, error=%v",
				userID, req.ServicioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservas/carrito/agregar - Item added: user_id=%d, servicio_id=%d, item_id=%d",
		userID, req.ServicioID, result.Item.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
