package get_facilities

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

type FacilityDirectory interface {
	ListFacilities(ctx context.Context) ([]domain.Facility, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
