package create_booking

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/availability"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor      domain.Actor     // от чьего имени бронирование
	FacilityID int64            // ID объекта
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Начало, например "09:30"
	EndTime    types.TimeString // Конец (не включительно)
}

// CheckResponse результат пробной проверки
type CheckResponse struct {
	Accepted bool
	Reason   availability.Reason
	Windows  []availability.Window
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
