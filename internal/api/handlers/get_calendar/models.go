package get_calendar

import (
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	getCalendar "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_calendar"
)

// EventResponse событие календаря
type EventResponse struct {
	Kind       string `json:"kind"` // booking | slot
	BookingID  *int64 `json:"booking_id,omitempty"`
	SlotID     *int64 `json:"slot_id,omitempty"`
	FacilityID int64  `json:"facility_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Status     string `json:"status,omitempty"`
	Title      string `json:"title"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Events []EventResponse `json:"events"`
}

func FromUseCaseResponse(resp *getCalendar.Response) CalendarResponse {
	events := make([]EventResponse, 0, len(resp.Events))
	for _, e := range resp.Events {
		events = append(events, EventResponse{
			Kind:       string(e.Kind),
			BookingID:  e.BookingID,
			SlotID:     e.SlotID,
			FacilityID: e.FacilityID,
			Date:       e.Date.Format(domain.DateFormat),
			StartTime:  e.StartTime.String(),
			EndTime:    e.EndTime.String(),
			Status:     string(e.Status),
			Title:      e.Title,
		})
	}

	return CalendarResponse{
		From:   resp.From.Format(domain.DateFormat),
		To:     resp.To.Format(domain.DateFormat),
		Events: events,
	}
}
