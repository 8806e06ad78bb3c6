package get_calendar

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/clock"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
)

type stubSlots struct {
	slots  []*domain.AvailableSlot
	filter *domain.SlotsFilter
}

func (s stubSlots) List(ctx context.Context, filter domain.SlotsFilter) ([]*domain.AvailableSlot, error) {
	*s.filter = filter
	return s.slots, nil
}

type stubBookings struct {
	bookings []*domain.Booking
	filter   *domain.BookingsFilter
}

func (s stubBookings) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	*s.filter = filter
	return s.bookings, nil
}

type inlineTx struct{}

func (inlineTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var (
	day1 = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	day2 = time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
)

func newUseCase(slotFilter *domain.SlotsFilter, bookingFilter *domain.BookingsFilter) *UseCase {
	slots := stubSlots{filter: slotFilter, slots: []*domain.AvailableSlot{
		{ID: ptr.Ptr(int64(2)), FacilityID: 7, Date: day2, StartTime: "09:00", EndTime: "10:00"},
		{ID: ptr.Ptr(int64(1)), FacilityID: 7, Date: day1, StartTime: "09:00", EndTime: "12:00"},
	}}
	bookings := stubBookings{filter: bookingFilter, bookings: []*domain.Booking{
		{ID: 5, FacilityID: 7, FacilityName: "Court", Date: day1, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusApproved},
		{ID: 6, FacilityID: 7, FacilityName: "Court", Date: day2, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusRejected},
	}}
	return NewUseCase(bookings, slots, inlineTx{}, clock.Fixed(time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC)), logger.NewDiscard())
}

func TestExecute(t *testing.T) {
	var slotFilter domain.SlotsFilter
	var bookingFilter domain.BookingsFilter
	uc := newUseCase(&slotFilter, &bookingFilter)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: ptr.Ptr(int64(7)), From: day1, To: day2})

	require.NoError(t, err)
	assert.True(t, bookingFilter.IncludeRejected)
	assert.Equal(t, day1, *slotFilter.DateFrom)

	// day1 slot is consumed by the approved booking; day2 slot stays free next to the rejected booking
	require.Len(t, resp.Events, 3)
	assert.Equal(t, domain.EventKindBooking, resp.Events[0].Kind)
	assert.Equal(t, int64(5), *resp.Events[0].BookingID)
	assert.Equal(t, day2, resp.Events[1].Date)
	assert.Equal(t, day2, resp.Events[2].Date)

	var kinds []domain.CalendarEventKind
	for _, e := range resp.Events[1:] {
		kinds = append(kinds, e.Kind)
	}
	assert.ElementsMatch(t, []domain.CalendarEventKind{domain.EventKindBooking, domain.EventKindSlot}, kinds)
}

func TestExecute_InvalidRange(t *testing.T) {
	var slotFilter domain.SlotsFilter
	var bookingFilter domain.BookingsFilter
	uc := newUseCase(&slotFilter, &bookingFilter)

	_, err := uc.Execute(context.Background(), &Request{From: day2, To: day1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{From: day1, To: day1.AddDate(0, 6, 0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{From: day1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRenderICS(t *testing.T) {
	var slotFilter domain.SlotsFilter
	var bookingFilter domain.BookingsFilter
	uc := newUseCase(&slotFilter, &bookingFilter)

	resp, err := uc.Execute(context.Background(), &Request{From: day1, To: day2})
	require.NoError(t, err)

	out := uc.RenderICS(resp)

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Equal(t, 3, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "UID:booking-5@facility-booking")
	assert.Contains(t, out, "STATUS:CONFIRMED")
	assert.Contains(t, out, "STATUS:CANCELLED")
	assert.Contains(t, out, "TRANSP:TRANSPARENT")
	assert.Contains(t, out, "DTSTART:20250110T100000Z")
}
