package availability

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

const facilityID int64 = 7

func date(s string) time.Time {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func slot(id int64, facility int64, day, start, end string) *domain.AvailableSlot {
	return &domain.AvailableSlot{
		ID:         &id,
		FacilityID: facility,
		Date:       date(day),
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
	}
}

func booking(id int64, facility int64, day, start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		FacilityID:   facility,
		FacilityName: "Tennis court",
		Date:         date(day),
		StartTime:    types.TimeString(start),
		EndTime:      types.TimeString(end),
		Status:       status,
	}
}

func candidate(day, start, end string) Candidate {
	return Candidate{
		FacilityID: facilityID,
		Date:       date(day),
		Start:      types.TimeString(start),
		End:        types.TimeString(end),
	}
}
