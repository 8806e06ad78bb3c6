package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Request модель запроса календаря
type Request struct {
	FacilityID *int64    // nil - все объекты
	From       time.Time // первая дата включительно
	To         time.Time // последняя дата включительно
}

// Response события календаря, упорядоченные по дате и времени начала
type Response struct {
	From   time.Time
	To     time.Time
	Events []domain.CalendarEvent
}
