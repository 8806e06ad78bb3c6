package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slots: slot not found")

	// ErrSlotAlreadyDeclared возвращается при повторном объявлении того же окна
	ErrSlotAlreadyDeclared = errors.New("slots: slot already declared")

	// ErrFacilityNotFound возвращается, когда объекта нет в справочнике
	ErrFacilityNotFound = errors.New("slots: facility not found")

	// ErrTransport возвращается, когда справочник объектов недоступен
	ErrTransport = errors.New("slots: facility directory unavailable")

	// ErrPastDate возвращается при объявлении окна на прошедшую дату
	ErrPastDate = errors.New("slots: date is in the past")

	// ErrAccessDenied возвращается, когда пользователь не администратор
	ErrAccessDenied = errors.New("slots: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots: internal error")
)
