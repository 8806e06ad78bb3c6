package get_free_windows

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/availability"
)

// Request модель запроса свободных окон
type Request struct {
	FacilityID int64
	Date       time.Time
}

// Response свободные окна объекта на дату, по возрастанию начала
type Response struct {
	FacilityID int64
	Date       time.Time
	Windows    []availability.Window
}
