package reservasapi

import "encoding/json"

// Cart pending reservation as the API returns it
type Cart struct {
	ID            int64      `json:"id"`
	UsuarioID     int64      `json:"usuario_id"`
	CodigoReserva string     `json:"codigo_reserva"`
	Estado        string     `json:"estado"`
	Servicios     []CartItem `json:"servicios"`
	CreatedAt     string     `json:"created_at,omitempty"`
	UpdatedAt     string     `json:"updated_at,omitempty"`
}

// CartItem one service line inside the cart
type CartItem struct {
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

// AddItemRequest payload for POST /reservas/carrito/agregar
type AddItemRequest struct {
	ServicioID      int64   `json:"servicio_id"`
	EmprendedorID   int64   `json:"emprendedor_id"`
	FechaInicio     string  `json:"fecha_inicio"`
	FechaFin        *string `json:"fecha_fin,omitempty"`
	HoraInicio      string  `json:"hora_inicio"`
	HoraFin         string  `json:"hora_fin"`
	DuracionMinutos *int    `json:"duracion_minutos,omitempty"`
	Cantidad        int     `json:"cantidad"`
	NotasCliente    *string `json:"notas_cliente,omitempty"`
}

// AddItemResult response of a successful add
type AddItemResult struct {
	Item          CartItem `json:"item"`
	CodigoReserva string   `json:"codigo_reserva"`
	PrecioTotal   *float64 `json:"precio_total"`
	Moneda        string   `json:"moneda,omitempty"`
}

// AvailabilityQuery parameters for GET /servicios/verificar-disponibilidad
type AvailabilityQuery struct {
	ServicioID  int64
	FechaInicio string
	FechaFin    string // optional
	HoraInicio  string
	HoraFin     string
}

// AvailabilityResult availability verdict; Disponible sits at the top level
// of the response rather than inside the data envelope
type AvailabilityResult struct {
	Disponible bool
	Message    string
}

// envelope standard API response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}
