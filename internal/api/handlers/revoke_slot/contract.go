package revoke_slot

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

type SlotService interface {
	Revoke(ctx context.Context, actor domain.Actor, slotID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
