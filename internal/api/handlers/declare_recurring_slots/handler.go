package declare_recurring_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/slots"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "объявлять окна может только администратор"
	msgPastDate           = "диапазон начинается в прошлом"
	msgFacilityNotFound   = "объект не найден"
	msgDirectoryDown      = "справочник объектов недоступен"
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

// Handle POST /available-slots/recurring/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /available-slots/recurring/ - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.DeclareRecurringRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /available-slots/recurring/ - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.DeclareRecurring(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, slots.ErrInvalidInput):
			// Текст ошибки сервиса объясняет, что не так с правилом или диапазоном
			h.logger.Warn("POST /available-slots/recurring/ - %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, slots.ErrPastDate):
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodePastDate, msgPastDate)

		case errors.Is(err, slots.ErrFacilityNotFound):
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, slots.ErrTransport):
			h.logger.Error("POST /available-slots/recurring/ - Facility directory unavailable: %v", err)
			handlers.RespondBadGateway(w, msgDirectoryDown)

		default:
			h.logger.Error("POST /available-slots/recurring/ - Failed: facility_id=%d, error=%v", req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /available-slots/recurring/ - facility_id=%d, created=%d, skipped=%d",
		req.FacilityID, len(result.Created), result.Skipped)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
