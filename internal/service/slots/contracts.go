package slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error)
	CreateBatch(ctx context.Context, slots []*domain.AvailableSlot) ([]*domain.AvailableSlot, error)
	List(ctx context.Context, filter domain.SlotsFilter) ([]*domain.AvailableSlot, error)
	Delete(ctx context.Context, id int64) error
}

// FacilityDirectory справочник объектов
type FacilityDirectory interface {
	GetFacility(ctx context.Context, id int64) (*domain.Facility, error)
}

// TimeProvider источник даты "сегодня"
type TimeProvider interface {
	Today() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
