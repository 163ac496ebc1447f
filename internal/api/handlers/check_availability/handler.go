package check_availability

import (
	"encoding/json"
	"errors"
	"net/http"

	checkAvailability "github.com/capachica-turismo/reservas-service/internal/usecase/check_availability"
)

const (
	msgInvalidQuery     = "parámetros de consulta inválidos"
	msgInvalidTimeRange = "la hora de fin debe ser posterior a la hora de inicio"
	msgServiceNotFound  = "el servicio no existe"
	msgInternalError    = "error interno del servidor"
)

type Handler struct {
	useCase AvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/servicios/verificar-disponibilidad
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /servicios/verificar-disponibilidad - Bad query: %v", err)
		writeResponse(w, http.StatusBadRequest, CheckAvailabilityResponse{
			Success: false,
			Message: msgInvalidQuery,
		})
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidTimeRange):
			h.logger.Warn("GET /servicios/verificar-disponibilidad - Invalid time range: service_id=%d", req.ServiceID)
			writeResponse(w, http.StatusBadRequest, CheckAvailabilityResponse{
				Success: false,
				Message: msgInvalidTimeRange,
			})
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /servicios/verificar-disponibilidad - Invalid input: service_id=%d, error=%v", req.ServiceID, err)
			writeResponse(w, http.StatusBadRequest, CheckAvailabilityResponse{
				Success: false,
				Message: msgInvalidQuery,
			})
		case errors.Is(err, checkAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /servicios/verificar-disponibilidad - Unknown service: service_id=%d", req.ServiceID)
			writeResponse(w, http.StatusNotFound, CheckAvailabilityResponse{
				Success: false,
				Message: msgServiceNotFound,
			})
		default:
			h.logger.Error("GET /servicios/verificar-disponibilidad - Failed: service_id=%d, error=%v", req.ServiceID, err)
			writeResponse(w, http.StatusInternalServerError, CheckAvailabilityResponse{
				Success: false,
				Message: msgInternalError,
			})
		}
		return
	}

	resp := CheckAvailabilityResponse{
		Success:    true,
		Disponible: result.Available,
	}
	if result.Reason != nil {
		resp.Message = *result.Reason
	}

	h.logger.Info("GET /servicios/verificar-disponibilidad - Checked: service_id=%d, available=%t", req.ServiceID, result.Available)
	writeResponse(w, http.StatusOK, resp)
}

func writeResponse(w http.ResponseWriter, status int, payload CheckAvailabilityResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
