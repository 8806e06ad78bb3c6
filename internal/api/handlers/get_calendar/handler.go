package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

const (
	formatJSON = "json"
	formatICS  = "ics"
)

const (
	msgInvalidFacilityID = "некорректный facility_id"
	msgInvalidRange      = "требуются from и to в формате YYYY-MM-DD"
	msgInvalidFormat     = "format должен быть json или ics"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /calendar/?facility_id=&from=&to=&format=json|ics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	facilityID, err := handlers.QueryInt64(r, "facility_id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	from, errFrom := types.ParseDate(query.Get("from"))
	to, errTo := types.ParseDate(query.Get("to"))
	if errFrom != nil || errTo != nil {
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	format := query.Get("format")
	if format == "" {
		format = formatJSON
	}
	if format != formatJSON && format != formatICS {
		handlers.RespondBadRequest(w, msgInvalidFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{FacilityID: facilityID, From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /calendar/ - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if format == formatICS {
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(h.useCase.RenderICS(result)))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
