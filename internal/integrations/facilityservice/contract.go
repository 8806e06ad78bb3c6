package facilityservice

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Directory источник справочника объектов (HTTP клиент)
type Directory interface {
	ListFacilities(ctx context.Context) ([]domain.Facility, error)
	GetFacility(ctx context.Context, id int64) (*domain.Facility, error)
}

// Cache кэш справочника объектов. ok=false означает промах
type Cache interface {
	GetList(ctx context.Context) (facilities []domain.Facility, ok bool, err error)
	SetList(ctx context.Context, facilities []domain.Facility) error
	Get(ctx context.Context, id int64) (facility *domain.Facility, ok bool, err error)
	Set(ctx context.Context, facility domain.Facility) error
}
