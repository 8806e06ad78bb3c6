package facilityservice

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объекта нет в справочнике
	ErrFacilityNotFound = errors.New("facilityservice client: facility not found")

	// ErrTransport возвращается, когда справочник недоступен или ответил некорректно
	ErrTransport = errors.New("facilityservice client: transport error")
)
