package availability

import (
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// FreeSlotTitle title of slot events
const FreeSlotTitle = "Available"

// Project merges bookings and still-free slots into calendar events.
// Every booking yields one event carrying its status; a slot yields an event only if the
// FreeWindows rule keeps it. Output order follows the input and carries no meaning.
func Project(bookings []*domain.Booking, slots []*domain.AvailableSlot) []domain.CalendarEvent {
	free := freeSlots(slots, bookings)
	events := make([]domain.CalendarEvent, 0, len(bookings)+len(free))

	for _, b := range bookings {
		id := b.ID
		events = append(events, domain.CalendarEvent{
			Kind:       domain.EventKindBooking,
			BookingID:  &id,
			FacilityID: b.FacilityID,
			Date:       b.Date,
			StartTime:  b.StartTime,
			EndTime:    b.EndTime,
			Status:     b.Status,
			Title:      bookingTitle(b),
		})
	}

	for _, s := range free {
		var slotID *int64
		if s.ID != nil {
			id := *s.ID
			slotID = &id
		}
		events = append(events, domain.CalendarEvent{
			Kind:       domain.EventKindSlot,
			SlotID:     slotID,
			FacilityID: s.FacilityID,
			Date:       s.Date,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Title:      FreeSlotTitle,
		})
	}

	return events
}

func bookingTitle(b *domain.Booking) string {
	if b.OwnerName != nil && *b.OwnerName != "" {
		return b.FacilityName + " (" + *b.OwnerName + ")"
	}
	return b.FacilityName
}
