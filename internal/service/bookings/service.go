package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/events"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/bookings/models"
)

// Service менеджер жизненного цикла бронирований.
// Единственное место, где меняется статус бронирования
type Service struct {
	bookingRepo BookingRepository
	publisher   EventPublisher
	metrics     TransitionObserver
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	publisher EventPublisher,
	metrics TransitionObserver,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// List получает бронирования по фильтрам
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус. Доступно только администратору.
// Разрешены только pending -> approved и pending -> rejected
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, actor domain.Actor, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d to status=%s by user=%d", bookingID, req.Status, actor.UserID)

	if !actor.IsAdmin() {
		s.logger.Warn("UpdateStatus: user=%d is not an administrator", actor.UserID)
		return nil, ErrAccessDenied
	}

	next, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	booking, err := s.getBooking(ctx, "UpdateStatus", bookingID)
	if err != nil {
		return nil, err
	}

	from := booking.Status
	if err := booking.Transition(next); err != nil {
		s.logger.Warn("UpdateStatus: booking id=%d transition %s -> %s rejected", bookingID, from, next)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, next)
	}

	updated, err := s.bookingRepo.UpdateStatusFrom(ctx, bookingID, from, next)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStatusChanged) {
			// Параллельный запрос успел изменить или удалить бронирование
			s.logger.Warn("UpdateStatus: booking id=%d changed concurrently", bookingID)
			return nil, fmt.Errorf("%w: booking changed concurrently", ErrInvalidTransition)
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.metrics.ObserveTransition(string(from), string(next))
	s.publish(ctx, events.TransitionEventType(next), updated)

	s.logger.Info("UpdateStatus: booking id=%d moved %s -> %s", bookingID, from, next)
	return models.FromDomainBooking(updated), nil
}

// Delete удаляет бронирование из любого статуса. Доступно владельцу или администратору
func (s *Service) Delete(ctx context.Context, bookingID int64, actor domain.Actor) error {
	s.logger.Info("Delete: booking id=%d by user=%d", bookingID, actor.UserID)

	booking, err := s.getBooking(ctx, "Delete", bookingID)
	if err != nil {
		return err
	}

	if !actor.CanManage(booking) {
		s.logger.Warn("Delete: user=%d cannot delete booking id=%d", actor.UserID, bookingID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.publish(ctx, events.TypeBookingDeleted, booking)

	s.logger.Info("Delete: booking id=%d deleted", bookingID)
	return nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// publish отправляет событие без влияния на результат операции
func (s *Service) publish(ctx context.Context, t events.Type, b *domain.Booking) {
	if err := s.publisher.Publish(ctx, events.NewBookingEvent(t, b, s.now())); err != nil {
		s.logger.Warn("publish: %s for booking id=%d failed: %v", t, b.ID, err)
	}
}
