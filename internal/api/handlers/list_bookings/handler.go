package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/bookings"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/bookings/models"
)

const (
	msgInvalidFacilityID = "некорректный facility_id"
	msgInvalidFilter     = "некорректные параметры фильтра (date: YYYY-MM-DD, status: pending|approved|rejected)"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /bookings/?facility_id=&date=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := handlers.QueryInt64(r, "facility_id")
	if err != nil {
		h.logger.Warn("GET /bookings/ - %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	req := &models.ListBookingsRequest{
		FacilityID: facilityID,
		Date:       handlers.QueryString(r, "date"),
		Status:     handlers.QueryString(r, "status"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/ - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings/ - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
