package domain

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

// allowedTransitions is the complete lifecycle table. Deletion is not a status and is
// allowed from every state, so it is not listed here.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending: {StatusApproved, StatusRejected},
}

// ParseBookingStatus converts a wire value into a BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// IsValid reports whether s is one of the known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Blocks reports whether a booking in this status holds its time window.
// Rejected bookings free their window immediately.
func (s BookingStatus) Blocks() bool {
	return s == StatusPending || s == StatusApproved
}

// Booking represents a reservation of a facility for a time window on a date
type Booking struct {
	ID           int64
	FacilityID   int64
	FacilityName string // denormalized label
	UserID       int64
	OwnerName    *string
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Status       BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its window
func (b *Booking) IsActive() bool {
	return b.Status.Blocks()
}

// Transition moves the booking to next or returns ErrInvalidTransition
func (b *Booking) Transition(next BookingStatus) error {
	if !b.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.Status = next
	return nil
}

// IsOwnedBy returns true if userID created the booking
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	FacilityID      *int64         // nil - все объекты
	Date            *time.Time     // nil - все даты
	DateFrom        *time.Time     // начало периода включительно
	DateTo          *time.Time     // конец периода включительно
	Status          *BookingStatus // фильтр по статусу
	IncludeRejected bool           // включать отклонённые
}
