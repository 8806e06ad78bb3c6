package get_free_windows

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	getFreeWindows "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_free_windows"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

const (
	msgMissingFacilityID = "требуется корректный facility_id"
	msgInvalidDate       = "требуется дата в формате YYYY-MM-DD"
)

type Handler struct {
	useCase GetFreeWindowsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeWindowsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /free-windows/?facility_id=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := handlers.QueryInt64(r, "facility_id")
	if err != nil || facilityID == nil {
		handlers.RespondBadRequest(w, msgMissingFacilityID)
		return
	}

	date, err := types.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFreeWindows.Request{FacilityID: *facilityID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getFreeWindows.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /free-windows/ - Failed: facility_id=%d, error=%v", *facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
