package events

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Type тип события жизненного цикла бронирования
type Type string

const (
	TypeBookingCreated  Type = "booking.created"
	TypeBookingApproved Type = "booking.approved"
	TypeBookingRejected Type = "booking.rejected"
	TypeBookingDeleted  Type = "booking.deleted"
)

// BookingEvent событие, публикуемое в Kafka
type BookingEvent struct {
	Type       Type      `json:"type"`
	BookingID  int64     `json:"booking_id"`
	FacilityID int64     `json:"facility_id"`
	UserID     int64     `json:"user_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewBookingEvent строит событие по бронированию
func NewBookingEvent(t Type, b *domain.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:       t,
		BookingID:  b.ID,
		FacilityID: b.FacilityID,
		UserID:     b.UserID,
		Date:       b.Date.Format(types.DateFormat),
		StartTime:  b.StartTime.String(),
		EndTime:    b.EndTime.String(),
		Status:     string(b.Status),
		OccurredAt: at.UTC(),
	}
}

// TransitionEventType возвращает тип события для перехода в статус
func TransitionEventType(status domain.BookingStatus) Type {
	switch status {
	case domain.StatusApproved:
		return TypeBookingApproved
	case domain.StatusRejected:
		return TypeBookingRejected
	}
	return ""
}
