package get_calendar

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-FacilityBooking/internal/availability"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// UseCase use case построения календаря бронирований и свободных окон
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute строит календарь за период: все бронирования (с их статусом, включая отклонённые)
// и окна, не занятые ни одним активным бронированием
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	var (
		slots    []*domain.AvailableSlot
		bookings []*domain.Booking
	)

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		slots, err = uc.slotRepo.List(txCtx, domain.SlotsFilter{
			FacilityID: req.FacilityID,
			DateFrom:   &req.From,
			DateTo:     &req.To,
		})
		if err != nil {
			return fmt.Errorf("failed to list slots: %v", err)
		}

		bookings, err = uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			FacilityID:      req.FacilityID,
			DateFrom:        &req.From,
			DateTo:          &req.To,
			IncludeRejected: true,
		})
		if err != nil {
			return fmt.Errorf("failed to list bookings: %v", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("GetCalendar: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	events := availability.Project(bookings, slots)
	sortEvents(events)

	return &Response{From: req.From, To: req.To, Events: events}, nil
}

func validateRequest(req *Request) error {
	if req.FacilityID != nil && *req.FacilityID <= 0 {
		return fmt.Errorf("%w: facility_id must be positive", ErrInvalidInput)
	}
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}
	if days := int(req.To.Sub(req.From).Hours() / 24); days >= domain.MaxCalendarRangeDays {
		return fmt.Errorf("%w: range must be shorter than %d days", ErrInvalidInput, domain.MaxCalendarRangeDays)
	}
	return nil
}

// sortEvents упорядочивает события для стабильного вывода
func sortEvents(events []domain.CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.StartTime.Minutes() != b.StartTime.Minutes() {
			return a.StartTime.Minutes() < b.StartTime.Minutes()
		}
		return a.FacilityID < b.FacilityID
	})
}
