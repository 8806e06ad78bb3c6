package declare_recurring_slots

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/slots/models"
)

type SlotService interface {
	DeclareRecurring(ctx context.Context, actor domain.Actor, req *models.DeclareRecurringRequest) (*models.RecurringResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
