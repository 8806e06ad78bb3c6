package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	slotRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/slot"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/facilityservice"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/slots/models"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Service сервис управления окнами доступности
type Service struct {
	slotRepo     SlotRepository
	facilities   FacilityDirectory
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса окон
func NewService(
	slotRepo SlotRepository,
	facilities FacilityDirectory,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:     slotRepo,
		facilities:   facilities,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Declare объявляет окно доступности. Доступно только администратору
func (s *Service) Declare(ctx context.Context, actor domain.Actor, req *models.DeclareSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Declare: facility=%d, date=%s, %s-%s by user=%d",
		req.FacilityID, req.Date, req.StartTime, req.EndTime, actor.UserID)

	if !actor.IsAdmin() {
		s.logger.Warn("Declare: user=%d is not an administrator", actor.UserID)
		return nil, ErrAccessDenied
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if date.Before(s.timeProvider.Today()) {
		return nil, ErrPastDate
	}

	if err := s.checkFacility(ctx, "Declare", req.FacilityID); err != nil {
		return nil, err
	}

	created, err := s.slotRepo.Create(ctx, &domain.AvailableSlot{
		FacilityID: req.FacilityID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
	})
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotAlreadyExists) {
			s.logger.Warn("Declare: slot already declared for facility=%d on %s", req.FacilityID, req.Date)
			return nil, ErrSlotAlreadyDeclared
		}
		s.logger.Error("Declare: repository error: %v", err)
		return nil, fmt.Errorf("%w: Declare - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainSlot(created)
	s.logger.Info("Declare: slot id=%d declared", resp.ID)
	return &resp, nil
}

// DeclareRecurring объявляет одно и то же окно на каждую дату правила RRULE в диапазоне [from, until].
// Уже объявленные окна пропускаются
func (s *Service) DeclareRecurring(ctx context.Context, actor domain.Actor, req *models.DeclareRecurringRequest) (*models.RecurringResponse, error) {
	s.logger.Info("DeclareRecurring: facility=%d, rrule=%q, %s..%s by user=%d",
		req.FacilityID, req.RRule, req.From, req.Until, actor.UserID)

	if !actor.IsAdmin() {
		s.logger.Warn("DeclareRecurring: user=%d is not an administrator", actor.UserID)
		return nil, ErrAccessDenied
	}

	from, err := parseDate("from", req.From)
	if err != nil {
		return nil, err
	}
	until, err := parseDate("until", req.Until)
	if err != nil {
		return nil, err
	}
	if until.Before(from) {
		return nil, fmt.Errorf("%w: until must not be before from", ErrInvalidInput)
	}
	if until.Sub(from) >= domain.MaxRecurringOccurrences*24*time.Hour {
		return nil, fmt.Errorf("%w: range must be shorter than %d days", ErrInvalidInput, domain.MaxRecurringOccurrences)
	}
	if from.Before(s.timeProvider.Today()) {
		return nil, ErrPastDate
	}
	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	dates, err := expandDates(req.RRule, from, until)
	if err != nil {
		s.logger.Warn("DeclareRecurring: %v", err)
		return nil, err
	}

	if err := s.checkFacility(ctx, "DeclareRecurring", req.FacilityID); err != nil {
		return nil, err
	}

	slots := make([]*domain.AvailableSlot, 0, len(dates))
	for _, date := range dates {
		slots = append(slots, &domain.AvailableSlot{
			FacilityID: req.FacilityID,
			Date:       date,
			StartTime:  start,
			EndTime:    end,
		})
	}

	created, err := s.slotRepo.CreateBatch(ctx, slots)
	if err != nil {
		s.logger.Error("DeclareRecurring: repository error: %v", err)
		return nil, fmt.Errorf("%w: DeclareRecurring - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeclareRecurring: facility=%d, %d created, %d skipped",
		req.FacilityID, len(created), len(slots)-len(created))

	return &models.RecurringResponse{
		Created: models.FromDomainSlotList(created),
		Skipped: len(slots) - len(created),
	}, nil
}

// List получает объявленные окна. Отсутствие окон - пустой список, не ошибка
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) ([]models.SlotResponse, error) {
	filter := domain.SlotsFilter{FacilityID: req.FacilityID}
	if req.Date != nil {
		date, err := parseDate("date", *req.Date)
		if err != nil {
			return nil, err
		}
		filter.Date = &date
	}

	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

// Revoke отзывает окно. Уже созданные бронирования остаются в силе
func (s *Service) Revoke(ctx context.Context, actor domain.Actor, slotID int64) error {
	s.logger.Info("Revoke: slot id=%d by user=%d", slotID, actor.UserID)

	if !actor.IsAdmin() {
		s.logger.Warn("Revoke: user=%d is not an administrator", actor.UserID)
		return ErrAccessDenied
	}

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("Revoke: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Revoke - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) checkFacility(ctx context.Context, op string, facilityID int64) error {
	if facilityID <= 0 {
		return fmt.Errorf("%w: facility_id must be positive", ErrInvalidInput)
	}

	_, err := s.facilities.GetFacility(ctx, facilityID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, facilityservice.ErrFacilityNotFound):
		s.logger.Warn("%s: facility id=%d not found", op, facilityID)
		return ErrFacilityNotFound
	default:
		s.logger.Error("%s: facility directory error: %v", op, err)
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
}

// expandDates разворачивает правило в уникальные календарные даты между from и until включительно.
// Правило не может быть чаще раза в день, обход останавливается на until или на лимите дат
func expandDates(rule string, from, until time.Time) ([]time.Time, error) {
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid rrule: %v", ErrInvalidInput, err)
	}
	opts := r.OrigOptions
	if opts.Freq > rrule.DAILY {
		return nil, fmt.Errorf("%w: rrule frequency finer than DAILY is not allowed", ErrInvalidInput)
	}
	if len(opts.Byhour) > 0 || len(opts.Byminute) > 0 || len(opts.Bysecond) > 0 {
		return nil, fmt.Errorf("%w: rrule must not use BYHOUR, BYMINUTE or BYSECOND", ErrInvalidInput)
	}
	r.DTStart(from)

	// Последний момент дня until, чтобы он попал в выборку
	last := until.Add(24*time.Hour - time.Second)

	var dates []time.Time
	seen := make(map[time.Time]struct{})
	next := r.Iterator()
	for occ, ok := next(); ok; occ, ok = next() {
		if occ.After(last) {
			break
		}
		if occ.Before(from) {
			continue
		}
		date := types.DateOnly(occ)
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		dates = append(dates, date)

		if len(dates) > domain.MaxRecurringOccurrences {
			return nil, fmt.Errorf("%w: rule produces more than %d dates", ErrInvalidInput, domain.MaxRecurringOccurrences)
		}
	}

	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: rule produces no dates in range", ErrInvalidInput)
	}
	return dates, nil
}
