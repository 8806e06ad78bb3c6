package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// FreeWindows returns the bookable windows of a facility on a date, ordered by start time.
//
// A declared slot is dropped as a whole as soon as any pending or approved booking of the
// same facility and date overlaps it; partially consumed slots are not split. No declared
// slots means no windows.
func FreeWindows(facilityID int64, date time.Time, slots []*domain.AvailableSlot, bookings []*domain.Booking) []Window {
	free := freeSlots(slotsFor(facilityID, date, slots), bookings)

	windows := make([]Window, 0, len(free))
	for _, s := range free {
		windows = append(windows, Window{Start: s.StartTime, End: s.EndTime})
	}
	sortWindows(windows)

	return windows
}

// freeSlots keeps the slots that no blocking booking of the same facility and date overlaps.
// FreeWindows and Project both go through here so the two views cannot diverge.
func freeSlots(slots []*domain.AvailableSlot, bookings []*domain.Booking) []*domain.AvailableSlot {
	result := make([]*domain.AvailableSlot, 0, len(slots))

	for _, slot := range slots {
		if !isConsumed(slot, bookings) {
			result = append(result, slot)
		}
	}

	return result
}

func isConsumed(slot *domain.AvailableSlot, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.IsActive() || b.FacilityID != slot.FacilityID || !types.SameDate(b.Date, slot.Date) {
			continue
		}
		if overlapsTimes(slot.StartTime, slot.EndTime, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

// slotsFor filters a snapshot down to one facility and date
func slotsFor(facilityID int64, date time.Time, slots []*domain.AvailableSlot) []*domain.AvailableSlot {
	result := make([]*domain.AvailableSlot, 0, len(slots))
	for _, s := range slots {
		if s.FacilityID == facilityID && types.SameDate(s.Date, date) {
			result = append(result, s)
		}
	}
	return result
}

// activeBookingsFor filters a snapshot down to blocking bookings of one facility and date
func activeBookingsFor(facilityID int64, date time.Time, bookings []*domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() && b.FacilityID == facilityID && types.SameDate(b.Date, date) {
			result = append(result, b)
		}
	}
	return result
}

func sortWindows(windows []Window) {
	sort.SliceStable(windows, func(i, j int) bool {
		si, sj := windows[i].Start.Minutes(), windows[j].Start.Minutes()
		if si != sj {
			return si < sj
		}
		return windows[i].End.Minutes() < windows[j].End.Minutes()
	})
}
