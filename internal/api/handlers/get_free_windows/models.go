package get_free_windows

import (
	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	getFreeWindows "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_free_windows"
)

// FreeWindowsResponse HTTP response model
type FreeWindowsResponse struct {
	FacilityID int64                     `json:"facility_id"`
	Date       string                    `json:"date"`
	Windows    []handlers.WindowResponse `json:"windows"`
}

func FromUseCaseResponse(resp *getFreeWindows.Response) FreeWindowsResponse {
	return FreeWindowsResponse{
		FacilityID: resp.FacilityID,
		Date:       resp.Date.Format(domain.DateFormat),
		Windows:    handlers.FromWindows(resp.Windows),
	}
}
