package domain

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// CalendarEventKind distinguishes booking events from free-slot events
type CalendarEventKind string

const (
	EventKindBooking CalendarEventKind = "booking"
	EventKindSlot    CalendarEventKind = "slot"
)

// CalendarEvent is a derived, renderable entry. It is rebuilt on every read.
type CalendarEvent struct {
	Kind       CalendarEventKind
	BookingID  *int64
	SlotID     *int64
	FacilityID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Status     BookingStatus // empty for slot events
	Title      string
}
