package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/availability"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/events"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/facilityservice"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	facilities   FacilityDirectory
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      DecisionObserver
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	facilities FacilityDirectory,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics DecisionObserver,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		facilities:   facilities,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute валидирует и сохраняет бронирование в статусе pending.
// Чтение снимка, проверка и вставка выполняются в одной сериализуемой транзакции
// под advisory-блокировкой (объект, дата), поэтому два пересекающихся запроса не пройдут оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, facility=%d, date=%s, %s-%s",
		req.Actor.UserID, req.FacilityID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект из справочника (название денормализуется в бронирование)
	facility, err := uc.getFacility(ctx, req.FacilityID)
	if err != nil {
		return nil, err
	}

	today := uc.timeProvider.Today()
	var result *domain.Booking

	// 3. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.bookingRepo.LockFacilityDate(txCtx, req.FacilityID, req.Date); err != nil {
			return fmt.Errorf("%w: failed to lock facility date: %v", ErrInternal, err)
		}

		decision, err := uc.decide(txCtx, req, today)
		if err != nil {
			return err
		}
		if !decision.Accepted {
			return &RejectionError{Decision: decision}
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			FacilityID:   req.FacilityID,
			FacilityName: facility.Name,
			UserID:       req.Actor.UserID,
			OwnerName:    req.Actor.Name,
			Date:         req.Date,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Status:       domain.StatusPending,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return &RejectionError{Decision: availability.Decision{Reason: availability.ReasonSlotTaken}}
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		var rejection *RejectionError
		if errors.As(err, &rejection) {
			uc.metrics.ObserveDecision(false, string(rejection.Decision.Reason))
			uc.logger.Warn("CreateBooking: rejected for facility=%d on %s: %s",
				req.FacilityID, req.Date.Format(domain.DateFormat), rejection.Decision.Reason)
			return nil, rejection
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.ObserveDecision(true, "")

	// 4. Событие публикуется после коммита; ошибка не влияет на результат
	if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.TypeBookingCreated, result, uc.timeProvider.Now())); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d created", result.ID)
	return &Response{Booking: result}, nil
}

// Check выполняет ту же проверку без сохранения
func (uc *UseCase) Check(ctx context.Context, req *Request) (*CheckResponse, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckBooking: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.getFacility(ctx, req.FacilityID); err != nil {
		return nil, err
	}

	today := uc.timeProvider.Today()
	var decision availability.Decision

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		decision, err = uc.decide(txCtx, req, today)
		return err
	})
	if err != nil {
		uc.logger.Error("CheckBooking: failed to load snapshot: %v", err)
		return nil, err
	}

	return &CheckResponse{
		Accepted: decision.Accepted,
		Reason:   decision.Reason,
		Windows:  decision.Windows,
	}, nil
}

// decide читает снимок окон и активных бронирований на дату и прогоняет валидатор
func (uc *UseCase) decide(ctx context.Context, req *Request, today time.Time) (availability.Decision, error) {
	slots, err := uc.slotRepo.List(ctx, domain.SlotsFilter{
		FacilityID: ptr.Ptr(req.FacilityID),
		Date:       ptr.Ptr(req.Date),
	})
	if err != nil {
		return availability.Decision{}, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		FacilityID: ptr.Ptr(req.FacilityID),
		Date:       ptr.Ptr(req.Date),
	})
	if err != nil {
		return availability.Decision{}, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	return availability.Validate(availability.Candidate{
		FacilityID: req.FacilityID,
		Date:       req.Date,
		Start:      req.StartTime,
		End:        req.EndTime,
	}, availability.Snapshot{
		Today:    today,
		Slots:    slots,
		Bookings: bookings,
	}), nil
}

func (uc *UseCase) getFacility(ctx context.Context, id int64) (*domain.Facility, error) {
	facility, err := uc.facilities.GetFacility(ctx, id)
	if err != nil {
		if errors.Is(err, facilityservice.ErrFacilityNotFound) {
			uc.logger.Warn("CreateBooking: facility id=%d not found", id)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateBooking: facility directory error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return facility, nil
}
