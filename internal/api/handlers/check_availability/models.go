package check_availability

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/capachica-turismo/reservas-service/internal/domain"
	checkAvailability "github.com/capachica-turismo/reservas-service/internal/usecase/check_availability"
	"github.com/capachica-turismo/reservas-service/pkg/types"
)

// CheckAvailabilityResponse availability verdict. Unlike the cart endpoints
// this one puts "disponible" at the top level, not inside a data envelope;
// the frontend reads it directly.
type CheckAvailabilityResponse struct {
	Success    bool   `json:"success"`
	Disponible bool   `json:"disponible"`
	Message    string `json:"message,omitempty"`
}

// parseQuery builds a usecase request from the query string.
// "fecha" is accepted as a fallback for "fecha_inicio".
func parseQuery(query url.Values) (*checkAvailability.Request, error) {
	serviceID, err := strconv.ParseInt(query.Get("servicio_id"), 10, 64)
	if err != nil || serviceID <= 0 {
		return nil, fmt.Errorf("invalid servicio_id %q", query.Get("servicio_id"))
	}

	rawDate := query.Get("fecha_inicio")
	if rawDate == "" {
		rawDate = query.Get("fecha")
	}
	startDate, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		return nil, fmt.Errorf("invalid fecha_inicio %q", rawDate)
	}

	var endDate *time.Time
	if raw := query.Get("fecha_fin"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid fecha_fin %q", raw)
		}
		endDate = &parsed
	}

	startTime, err := types.NewTimeStringFromString(query.Get("hora_inicio"))
	if err != nil {
		return nil, fmt.Errorf("invalid hora_inicio %q", query.Get("hora_inicio"))
	}

	endTime, err := types.NewTimeStringFromString(query.Get("hora_fin"))
	if err != nil {
		return nil, fmt.Errorf("invalid hora_fin %q", query.Get("hora_fin"))
	}

	return &checkAvailability.Request{
		ServiceID: serviceID,
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}
