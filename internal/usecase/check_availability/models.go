package check_availability

import (
	"time"

	"github.com/capachica-turismo/reservas-service/pkg/types"
)

// Request availability query for one service and time window.
// EndDate is optional; when set, every date of the range must be free.
type Request struct {
	ServiceID int64
	StartDate time.Time
	EndDate   *time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response result of the availability check
type Response struct {
	Available       bool
	Reason          *string // set when Available is false
	DurationMinutes int     // EndTime - StartTime
}
