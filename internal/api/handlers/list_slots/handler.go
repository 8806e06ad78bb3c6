package list_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/slots"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/slots/models"
)

const (
	msgInvalidFacilityID = "некорректный facility_id"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /available-slots/?facility_id=&date=
// Отсутствие окон - пустой список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := handlers.QueryInt64(r, "facility_id")
	if err != nil {
		h.logger.Warn("GET /available-slots/ - %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListSlotsRequest{
		FacilityID: facilityID,
		Date:       handlers.QueryString(r, "date"),
	})
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /available-slots/ - Failed to list slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
