package get_calendar

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

const productID = "-//SMC//FacilityBooking//RU"

// RenderICS сериализует календарь в iCalendar (text/calendar).
// Даты и время событий трактуются в часовом поясе сервиса
func (uc *UseCase) RenderICS(resp *Response) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	stamp := uc.timeProvider.Now()
	loc := uc.timeProvider.Location()

	for _, e := range resp.Events {
		event := cal.AddEvent(eventUID(e))
		event.SetDtStampTime(stamp)
		event.SetStartAt(wallClock(e.Date, e.StartTime.Minutes(), loc))
		event.SetEndAt(wallClock(e.Date, e.EndTime.Minutes(), loc))
		event.SetSummary(e.Title)

		switch e.Kind {
		case domain.EventKindBooking:
			event.SetProperty(ical.ComponentPropertyStatus, icsStatus(e.Status))
			event.SetDescription(fmt.Sprintf("facility_id=%d status=%s", e.FacilityID, e.Status))
		case domain.EventKindSlot:
			event.SetProperty(ical.ComponentPropertyTransp, "TRANSPARENT")
		}
	}

	return cal.Serialize()
}

func eventUID(e domain.CalendarEvent) string {
	if e.Kind == domain.EventKindBooking && e.BookingID != nil {
		return fmt.Sprintf("booking-%d@facility-booking", *e.BookingID)
	}
	if e.SlotID != nil {
		return fmt.Sprintf("slot-%d@facility-booking", *e.SlotID)
	}
	return fmt.Sprintf("slot-%d-%s-%s@facility-booking", e.FacilityID, e.Date.Format("20060102"), e.StartTime)
}

func icsStatus(status domain.BookingStatus) string {
	switch status {
	case domain.StatusApproved:
		return "CONFIRMED"
	case domain.StatusRejected:
		return "CANCELLED"
	}
	return "TENTATIVE"
}

func wallClock(date time.Time, minutes int, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc)
}
