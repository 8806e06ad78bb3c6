package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

var today = date("2025-01-05")

func dayOneSlot() []*domain.AvailableSlot {
	return []*domain.AvailableSlot{slot(1, facilityID, "2025-01-10", "09:00", "17:00")}
}

func TestValidate_InsideSlotAccepted(t *testing.T) {
	d := Validate(candidate("2025-01-10", "09:30", "10:30"), Snapshot{Today: today, Slots: dayOneSlot()})

	assert.True(t, d.Accepted)
	assert.Equal(t, ReasonNone, d.Reason)
	assert.NoError(t, d.Err())
}

func TestValidate_OverlapSlotTaken(t *testing.T) {
	existing := booking(10, facilityID, "2025-01-10", "09:30", "10:30", domain.StatusApproved)

	d := Validate(candidate("2025-01-10", "10:00", "11:00"), Snapshot{
		Today:    today,
		Slots:    dayOneSlot(),
		Bookings: []*domain.Booking{existing},
	})

	assert.False(t, d.Accepted)
	assert.Equal(t, ReasonSlotTaken, d.Reason)
	assert.Same(t, existing, d.Conflict)
	assert.ErrorIs(t, d.Err(), ErrSlotTaken)
}

func TestValidate_AdjacentAccepted(t *testing.T) {
	d := Validate(candidate("2025-01-10", "10:30", "11:00"), Snapshot{
		Today:    today,
		Slots:    dayOneSlot(),
		Bookings: []*domain.Booking{booking(10, facilityID, "2025-01-10", "09:30", "10:30", domain.StatusApproved)},
	})

	assert.True(t, d.Accepted)
}

func TestValidate_NoSlotsDeclared(t *testing.T) {
	d := Validate(candidate("2025-02-01", "10:00", "11:00"), Snapshot{Today: today, Slots: dayOneSlot()})

	assert.Equal(t, ReasonNoSlotsDeclared, d.Reason)
	assert.ErrorIs(t, d.Err(), ErrNoSlotsDeclared)
}

func TestValidate_PastDateCheckedFirst(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1).Format("2006-01-02")

	// Everything else is wrong too: no slots and a clashing booking
	d := Validate(candidate(yesterday, "10:00", "11:00"), Snapshot{
		Today:    today,
		Bookings: []*domain.Booking{booking(10, facilityID, yesterday, "10:00", "11:00", domain.StatusApproved)},
	})

	assert.Equal(t, ReasonPastDate, d.Reason)
}

func TestValidate_TodayIsNotPast(t *testing.T) {
	late := today.Add(23 * time.Hour)
	slots := []*domain.AvailableSlot{slot(1, facilityID, "2025-01-05", "09:00", "17:00")}

	d := Validate(candidate("2025-01-05", "09:00", "10:00"), Snapshot{Today: late, Slots: slots})

	assert.True(t, d.Accepted)
}

func TestValidate_RejectedBookingFreesWindow(t *testing.T) {
	d := Validate(candidate("2025-01-10", "09:30", "10:30"), Snapshot{
		Today:    today,
		Slots:    dayOneSlot(),
		Bookings: []*domain.Booking{booking(10, facilityID, "2025-01-10", "09:30", "10:30", domain.StatusRejected)},
	})

	assert.True(t, d.Accepted)
}

func TestValidate_SlotTakenBeforeNoSlots(t *testing.T) {
	d := Validate(candidate("2025-01-10", "10:00", "11:00"), Snapshot{
		Today:    today,
		Bookings: []*domain.Booking{booking(10, facilityID, "2025-01-10", "10:30", "11:30", domain.StatusPending)},
	})

	assert.Equal(t, ReasonSlotTaken, d.Reason)
}

func TestValidate_ContainmentNotUnion(t *testing.T) {
	slots := []*domain.AvailableSlot{
		slot(1, facilityID, "2025-01-10", "10:00", "11:00"),
		slot(2, facilityID, "2025-01-10", "09:00", "10:00"),
	}

	d := Validate(candidate("2025-01-10", "09:30", "10:30"), Snapshot{Today: today, Slots: slots})

	assert.Equal(t, ReasonOutsideAvailableWindow, d.Reason)
	assert.Equal(t, []Window{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
	}, d.Windows)
	assert.ErrorIs(t, d.Err(), ErrOutsideAvailableWindow)
}

func TestValidate_NoSlotsRejectsEveryInterval(t *testing.T) {
	for start := 0; start < 23*60; start += 45 {
		c := Candidate{FacilityID: facilityID, Date: date("2025-02-01")}
		c.Start = mustTime(start)
		c.End = mustTime(start + 60)

		d := Validate(c, Snapshot{Today: today})
		assert.Equal(t, ReasonNoSlotsDeclared, d.Reason, "candidate %s-%s", c.Start, c.End)
	}
}

func TestValidate_RejectedNeverCausesSlotTaken(t *testing.T) {
	rejected := booking(10, facilityID, "2025-01-10", "09:00", "17:00", domain.StatusRejected)

	for start := 9 * 60; start < 16*60; start += 30 {
		c := Candidate{FacilityID: facilityID, Date: date("2025-01-10"), Start: mustTime(start), End: mustTime(start + 60)}
		d := Validate(c, Snapshot{Today: today, Slots: dayOneSlot(), Bookings: []*domain.Booking{rejected}})
		assert.NotEqual(t, ReasonSlotTaken, d.Reason)
	}
}

func TestValidate_OtherFacilityBookingsIgnored(t *testing.T) {
	d := Validate(candidate("2025-01-10", "09:30", "10:30"), Snapshot{
		Today:    today,
		Slots:    dayOneSlot(),
		Bookings: []*domain.Booking{booking(10, facilityID+1, "2025-01-10", "09:30", "10:30", domain.StatusApproved)},
	})

	assert.True(t, d.Accepted)
}

func mustTime(minutes int) types.TimeString {
	ts, err := types.NewTimeStringFromMinutes(minutes)
	if err != nil {
		panic(err)
	}
	return ts
}
