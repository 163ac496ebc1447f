package book_service

import (
	"github.com/capachica-turismo/reservas-service/internal/domain"
	"github.com/capachica-turismo/reservas-service/internal/integrations/reservasapi"
	"github.com/capachica-turismo/reservas-service/pkg/types"
)

// Request one booking attempt from a service detail page
type Request struct {
	Service         *domain.Service
	FechaInicio     string // "2025-06-01"
	FechaFin        string // optional, lodging ranges
	HoraInicio      types.TimeString
	HoraFin         types.TimeString
	DuracionMinutos *int
	Cantidad        int
	NotasCliente    *string

	// ReturnTo is where login should bring the user back to,
	// usually the service detail page.
	ReturnTo string
}

// Response outcome of a successful booking: the service now sits in the
// cart and Total is the advisory display price
type Response struct {
	Item   reservasapi.CartItem
	Total  *float64
	Moneda string
}

func (r *Request) toAddItemRequest() reservasapi.AddItemRequest {
	var fechaFin *string
	if r.FechaFin != "" {
		fechaFin = &r.FechaFin
	}

	return reservasapi.AddItemRequest{
		ServicioID:      r.Service.ID,
		EmprendedorID:   r.Service.EmprendedorID,
		FechaInicio:     r.FechaInicio,
		FechaFin:        fechaFin,
		HoraInicio:      r.HoraInicio.String(),
		HoraFin:         r.HoraFin.String(),
		DuracionMinutos: r.DuracionMinutos,
		Cantidad:        r.Cantidad,
		NotasCliente:    r.NotasCliente,
	}
}
