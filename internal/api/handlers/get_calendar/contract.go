package get_calendar

import (
	"context"

	getCalendar "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_calendar"
)

type GetCalendarUseCase interface {
	Execute(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error)
	RenderICS(resp *getCalendar.Response) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
