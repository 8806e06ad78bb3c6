package create_booking

import (
	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-FacilityBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID int64  `json:"facility_id"`
	Date       string `json:"date"`       // "2025-01-10"
	StartTime  string `json:"start_time"` // "09:30"
	EndTime    string `json:"end_time"`   // "10:30"
}

// CheckResponse результат пробной проверки
type CheckResponse struct {
	Accepted         bool                      `json:"accepted"`
	Reason           string                    `json:"reason,omitempty"`
	AvailableWindows []handlers.WindowResponse `json:"available_windows,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Некорректное время передается как есть, его отклонит use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) (*createBooking.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Actor:      actor,
		FacilityID: r.FacilityID,
		Date:       date,
		StartTime:  normalizeTime(r.StartTime),
		EndTime:    normalizeTime(r.EndTime),
	}, nil
}

// FromCheckResponse конвертирует результат проверки в HTTP ответ
func FromCheckResponse(resp *createBooking.CheckResponse) CheckResponse {
	out := CheckResponse{
		Accepted: resp.Accepted,
		Reason:   string(resp.Reason),
	}
	if len(resp.Windows) > 0 {
		out.AvailableWindows = handlers.FromWindows(resp.Windows)
	}
	return out
}

// normalizeTime приводит "HH:MM:SS" к "HH:MM"
func normalizeTime(raw string) types.TimeString {
	if t, err := types.NewTimeStringFromString(raw); err == nil {
		return t
	}
	return types.TimeString(raw)
}
