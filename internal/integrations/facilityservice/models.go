package facilityservice

import "github.com/m04kA/SMC-FacilityBooking/internal/domain"

// Facility модель объекта из справочника
type Facility struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToDomain преобразует модель справочника в доменную
func (f Facility) ToDomain() domain.Facility {
	return domain.Facility{ID: f.ID, Name: f.Name}
}
