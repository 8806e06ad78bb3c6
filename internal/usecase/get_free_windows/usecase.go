package get_free_windows

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/availability"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
)

// UseCase use case получения свободных окон объекта на дату
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, slotRepo SlotRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute возвращает окна, не пересекающиеся ни с одним активным бронированием.
// Окно исключается целиком, даже если занята только его часть
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.FacilityID <= 0 {
		return nil, fmt.Errorf("%w: facility_id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	var (
		slots    []*domain.AvailableSlot
		bookings []*domain.Booking
	)

	// Окна и бронирования читаются из одного снимка
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		slots, err = uc.slotRepo.List(txCtx, domain.SlotsFilter{
			FacilityID: ptr.Ptr(req.FacilityID),
			Date:       ptr.Ptr(req.Date),
		})
		if err != nil {
			return fmt.Errorf("failed to list slots: %v", err)
		}

		bookings, err = uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			FacilityID: ptr.Ptr(req.FacilityID),
			Date:       ptr.Ptr(req.Date),
		})
		if err != nil {
			return fmt.Errorf("failed to list bookings: %v", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("GetFreeWindows: facility=%d, date=%s: %v", req.FacilityID, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{
		FacilityID: req.FacilityID,
		Date:       req.Date,
		Windows:    availability.FreeWindows(req.FacilityID, req.Date, slots, bookings),
	}, nil
}
