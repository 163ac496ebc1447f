package add_cart_item

import (
	"time"

	"github.com/capachica-turismo/reservas-service/internal/domain"
	"github.com/capachica-turismo/reservas-service/internal/service/cart/models"
	addCartItem "github.com/capachica-turismo/reservas-service/internal/usecase/add_cart_item"
	"github.com/capachica-turismo/reservas-service/pkg/types"
)

// AddCartItemRequest HTTP request model, field names as the frontend sends
// them
type AddCartItemRequest struct {
	ServicioID      int64   `json:"servicio_id"`
	EmprendedorID   int64   `json:"emprendedor_id"`
	FechaInicio     string  `json:"fecha_inicio"` // "2025-06-01"
	FechaFin        *string `json:"fecha_fin,omitempty"`
	HoraInicio      string  `json:"hora_inicio"` // "10:00"
	HoraFin         string  `json:"hora_fin"`
	DuracionMinutos *int    `json:"duracion_minutos,omitempty"`
	Cantidad        int     `json:"cantidad"`
	NotasCliente    *string `json:"notas_cliente,omitempty"`
}

// AddCartItemResponse HTTP response model
type AddCartItemResponse struct {
	Item          models.CartItemResponse `json:"item"`
	CodigoReserva string                  `json:"codigo_reserva"`
	PrecioTotal   *float64                `json:"precio_total"`
	Moneda        string                  `json:"moneda,omitempty"`
}

// ToUseCaseRequest parses dates and times into the usecase model
func (r *AddCartItemRequest) ToUseCaseRequest(userID int64) (*addCartItem.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.FechaInicio)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if r.FechaFin != nil && *r.FechaFin != "" {
		parsed, err := time.Parse(domain.DateFormat, *r.FechaFin)
		if err != nil {
			return nil, err
		}
		endDate = &parsed
	}

	startTime, err := types.NewTimeStringFromString(r.HoraInicio)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.HoraFin)
	if err != nil {
		return nil, err
	}

	return &addCartItem.Request{
		UserID:          userID,
		ServiceID:       r.ServicioID,
		EmprendedorID:   r.EmprendedorID,
		StartDate:       startDate,
		EndDate:         endDate,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: r.DuracionMinutos,
		Quantity:        r.Cantidad,
		ClientNotes:     r.NotasCliente,
	}, nil
}

// FromUseCaseResponse converts the usecase response to the HTTP model
func FromUseCaseResponse(resp *addCartItem.Response) *AddCartItemResponse {
	return &AddCartItemResponse{
		Item:          resp.Item,
		CodigoReserva: resp.CartCode,
		PrecioTotal:   resp.Total,
		Moneda:        resp.Currency,
	}
}
