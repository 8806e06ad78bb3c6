package domain

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// AvailableSlot represents an administrator-declared window during which a facility
// accepts bookings on a given date
type AvailableSlot struct {
	ID         *int64 // nil until persisted
	FacilityID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString

	CreatedAt time.Time
}

// IsValidRange reports whether start is strictly before end
func (s *AvailableSlot) IsValidRange() bool {
	return s.StartTime.Minutes() < s.EndTime.Minutes()
}

// SlotsFilter фильтр для выборки слотов
type SlotsFilter struct {
	FacilityID *int64
	Date       *time.Time
	DateFrom   *time.Time
	DateTo     *time.Time
}
