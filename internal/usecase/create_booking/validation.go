package create_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Правила доступности проверяет движок, здесь только форма запроса
func validateRequest(req *Request) error {
	if req.Actor.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facility_id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start_time: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end_time: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: start_time must be before end_time", ErrInvalidInput)
	}

	if req.Actor.Name != nil && utf8.RuneCountInString(*req.Actor.Name) > domain.MaxOwnerNameLength {
		return fmt.Errorf("%w: owner name is longer than %d characters", ErrInvalidInput, domain.MaxOwnerNameLength)
	}

	return nil
}
