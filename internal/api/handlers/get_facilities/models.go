package get_facilities

import "github.com/m04kA/SMC-FacilityBooking/internal/domain"

// FacilityResponse HTTP response model
type FacilityResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromDomainFacilities(facilities []domain.Facility) []FacilityResponse {
	resp := make([]FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		resp = append(resp, FacilityResponse{ID: f.ID, Name: f.Name})
	}
	return resp
}
