package availability

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Reason machine-readable rejection code
type Reason string

const (
	ReasonNone                   Reason = ""
	ReasonPastDate               Reason = "PAST_DATE"
	ReasonSlotTaken              Reason = "SLOT_TAKEN"
	ReasonNoSlotsDeclared        Reason = "NO_SLOTS_DECLARED"
	ReasonOutsideAvailableWindow Reason = "OUTSIDE_AVAILABLE_WINDOW"
)

var (
	ErrPastDate               = errors.New("availability: date is in the past")
	ErrSlotTaken              = errors.New("availability: slot is already taken")
	ErrNoSlotsDeclared        = errors.New("availability: no slots declared for this date")
	ErrOutsideAvailableWindow = errors.New("availability: outside available window")
)

// Candidate requested booking
type Candidate struct {
	FacilityID int64
	Date       time.Time
	Start      types.TimeString
	End        types.TimeString
}

// Snapshot is everything Validate looks at. Today is supplied by the caller.
type Snapshot struct {
	Today    time.Time
	Slots    []*domain.AvailableSlot
	Bookings []*domain.Booking
}

// Decision result of Validate
type Decision struct {
	Accepted bool
	Reason   Reason
	// Windows lists the declared windows of the date when Reason is OUTSIDE_AVAILABLE_WINDOW
	Windows []Window
	// Conflict is the first blocking booking found when Reason is SLOT_TAKEN
	Conflict *domain.Booking
}

// Err returns the sentinel error for a rejected decision, nil when accepted
func (d Decision) Err() error {
	switch d.Reason {
	case ReasonPastDate:
		return ErrPastDate
	case ReasonSlotTaken:
		return ErrSlotTaken
	case ReasonNoSlotsDeclared:
		return ErrNoSlotsDeclared
	case ReasonOutsideAvailableWindow:
		return ErrOutsideAvailableWindow
	}
	return nil
}

// Validate checks a candidate against the snapshot. The first failing rule wins:
//  1. date before today                          -> PAST_DATE
//  2. overlaps a pending or approved booking     -> SLOT_TAKEN
//  3. no slots declared for the facility/date    -> NO_SLOTS_DECLARED
//  4. not inside one single declared slot        -> OUTSIDE_AVAILABLE_WINDOW
func Validate(c Candidate, s Snapshot) Decision {
	if types.DateOnly(c.Date).Before(types.DateOnly(s.Today)) {
		return Decision{Reason: ReasonPastDate}
	}

	start, end := c.Start.Minutes(), c.End.Minutes()

	for _, b := range activeBookingsFor(c.FacilityID, c.Date, s.Bookings) {
		if Overlaps(start, end, b.StartTime.Minutes(), b.EndTime.Minutes()) {
			return Decision{Reason: ReasonSlotTaken, Conflict: b}
		}
	}

	slots := slotsFor(c.FacilityID, c.Date, s.Slots)
	if len(slots) == 0 {
		return Decision{Reason: ReasonNoSlotsDeclared}
	}

	// Containment in a single slot; adjacent slots are not merged
	for _, slot := range slots {
		if Contains(slot.StartTime.Minutes(), slot.EndTime.Minutes(), start, end) {
			return Decision{Accepted: true}
		}
	}

	windows := make([]Window, 0, len(slots))
	for _, slot := range slots {
		windows = append(windows, Window{Start: slot.StartTime, End: slot.EndTime})
	}
	sortWindows(windows)

	return Decision{Reason: ReasonOutsideAvailableWindow, Windows: windows}
}
