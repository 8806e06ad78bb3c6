package slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// parseWindow строго разбирает время окна и проверяет start < end
func parseWindow(start, end string) (types.TimeString, types.TimeString, error) {
	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return "", "", fmt.Errorf("%w: start_time: %v", ErrInvalidInput, err)
	}
	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return "", "", fmt.Errorf("%w: end_time: %v", ErrInvalidInput, err)
	}
	if !startTime.IsBefore(endTime) {
		return "", "", fmt.Errorf("%w: start_time must be before end_time", ErrInvalidInput)
	}
	return startTime, endTime, nil
}

func parseDate(field, value string) (time.Time, error) {
	date, err := types.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrInvalidInput, field)
	}
	return date, nil
}
