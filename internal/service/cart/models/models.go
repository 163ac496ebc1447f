package models

import (
	"time"

	"github.com/capachica-turismo/reservas-service/internal/domain"
)

// CartResponse cart payload as the frontend knows it (reserva with its
// servicios). Field names follow the original API contract.
type CartResponse struct {
	ID            int64              `json:"id"`
	UsuarioID     int64              `json:"usuario_id"`
	CodigoReserva string             `json:"codigo_reserva"`
	Estado        string             `json:"estado"`
	Servicios     []CartItemResponse `json:"servicios"`
	CreatedAt     string             `json:"created_at,omitempty"`
	UpdatedAt     string             `json:"updated_at,omitempty"`
}

// CartItemResponse one line item of the cart
type CartItemResponse struct {
	ID              int64   `json:"id"`
	ReservaID       int64   `json:"reserva_id"`
	ServicioID      int64   `json:"servicio_id"`
	EmprendedorID   int64   `json:"emprendedor_id"`
	FechaInicio     string  `json:"fecha_inicio"`
	FechaFin        *string `json:"fecha_fin,omitempty"`
	HoraInicio      string  `json:"hora_inicio"`
	HoraFin         string  `json:"hora_fin"`
	DuracionMinutos int     `json:"duracion_minutos"`
	Cantidad        int     `json:"cantidad"`
	NotasCliente    *string `json:"notas_cliente,omitempty"`
	Estado          string  `json:"estado"`
}

// FromDomainCart converts a domain cart to its API representation
func FromDomainCart(cart *domain.Cart) *CartResponse {
	servicios := make([]CartItemResponse, len(cart.Items))
	for i, item := range cart.Items {
		servicios[i] = FromDomainCartItem(item)
	}

	return &CartResponse{
		ID:            cart.ID,
		UsuarioID:     cart.UserID,
		CodigoReserva: cart.Code,
		Estado:        string(cart.Status),
		Servicios:     servicios,
		CreatedAt:     cart.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     cart.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainCartItem converts a domain line item to its API representation
func FromDomainCartItem(item *domain.CartItem) CartItemResponse {
	var fechaFin *string
	if item.EndDate != nil {
		s := item.EndDate.Format(domain.DateFormat)
		fechaFin = &s
	}

	return CartItemResponse{
		ID:              item.ID,
		ReservaID:       item.CartID,
		ServicioID:      item.ServiceID,
		EmprendedorID:   item.EmprendedorID,
		FechaInicio:     item.StartDate.Format(domain.DateFormat),
		FechaFin:        fechaFin,
		HoraInicio:      item.StartTime.String(),
		HoraFin:         item.EndTime.String(),
		DuracionMinutos: item.DurationMin,
		Cantidad:        item.Quantity,
		NotasCliente:    item.ClientNotes,
		Estado:          string(item.Status),
	}
}
