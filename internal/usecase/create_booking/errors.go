package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-FacilityBooking/internal/availability"
)

var (
	// ErrFacilityNotFound возвращается, когда объекта нет в справочнике
	ErrFacilityNotFound = errors.New("create_booking: facility not found")

	// ErrTransport возвращается, когда справочник объектов недоступен
	ErrTransport = errors.New("create_booking: facility directory unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// RejectionError бронирование отклонено правилами доступности.
// errors.Is работает с ошибками пакета availability (ErrPastDate, ErrSlotTaken и т.д.)
type RejectionError struct {
	Decision availability.Decision
}

func (e *RejectionError) Error() string {
	return "create_booking: rejected: " + string(e.Decision.Reason)
}

func (e *RejectionError) Unwrap() error {
	return e.Decision.Err()
}
