package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
)

func TestProject_BookingsAndFreeSlots(t *testing.T) {
	bookings := []*domain.Booking{
		booking(10, facilityID, "2025-01-10", "09:30", "10:30", domain.StatusApproved),
		booking(11, facilityID, "2025-01-10", "18:00", "19:00", domain.StatusRejected),
	}
	bookings[0].OwnerName = ptr.Ptr("Ivan")
	slots := []*domain.AvailableSlot{
		slot(1, facilityID, "2025-01-10", "09:00", "17:00"),
		slot(2, facilityID, "2025-01-10", "18:00", "20:00"),
	}

	events := Project(bookings, slots)

	require.Len(t, events, 3)

	assert.Equal(t, domain.EventKindBooking, events[0].Kind)
	assert.Equal(t, int64(10), *events[0].BookingID)
	assert.Equal(t, domain.StatusApproved, events[0].Status)
	assert.Equal(t, "Tennis court (Ivan)", events[0].Title)

	assert.Equal(t, domain.EventKindBooking, events[1].Kind)
	assert.Equal(t, domain.StatusRejected, events[1].Status)
	assert.Equal(t, "Tennis court", events[1].Title)

	// the rejected booking does not consume 18:00-20:00
	assert.Equal(t, domain.EventKindSlot, events[2].Kind)
	assert.Equal(t, int64(2), *events[2].SlotID)
	assert.Equal(t, FreeSlotTitle, events[2].Title)
}

func TestProject_Idempotent(t *testing.T) {
	bookings := []*domain.Booking{
		booking(10, facilityID, "2025-01-10", "09:30", "10:30", domain.StatusPending),
	}
	slots := []*domain.AvailableSlot{
		slot(1, facilityID, "2025-01-10", "09:00", "10:00"),
		slot(2, facilityID, "2025-01-10", "12:00", "13:00"),
	}

	assert.Equal(t, Project(bookings, slots), Project(bookings, slots))
}

func TestProject_ConsistentWithFreeWindows(t *testing.T) {
	day := date("2025-01-10")
	bookings := []*domain.Booking{
		booking(10, facilityID, "2025-01-10", "09:30", "10:30", domain.StatusPending),
		booking(11, facilityID, "2025-01-10", "14:00", "15:00", domain.StatusRejected),
	}
	slots := []*domain.AvailableSlot{
		slot(1, facilityID, "2025-01-10", "09:00", "10:00"),
		slot(2, facilityID, "2025-01-10", "10:00", "11:00"),
		slot(3, facilityID, "2025-01-10", "14:00", "16:00"),
	}

	var projected []Window
	for _, e := range Project(bookings, slots) {
		if e.Kind == domain.EventKindSlot {
			projected = append(projected, Window{Start: e.StartTime, End: e.EndTime})
		}
	}
	sortWindows(projected)

	assert.Equal(t, FreeWindows(facilityID, day, slots, bookings), projected)
}

func TestProject_Empty(t *testing.T) {
	assert.Empty(t, Project(nil, nil))
}
