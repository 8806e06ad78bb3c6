package declare_slot

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
	msgInvalidInput       = "некорректные параметры окна"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "объявлять окна может только администратор"
	msgPastDate           = "нельзя объявить окно на прошедшую дату"
	msgFacilityNotFound   = "объект не найден"
	msgDirectoryDown      = "справочник объектов недоступен"
	msgAlreadyDeclared    = "такое окно уже объявлено"
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

// Handle POST /available-slots/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /available-slots/ - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.DeclareSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /available-slots/ - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := h.service.Declare(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /available-slots/ - %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, slots.ErrPastDate):
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodePastDate, msgPastDate)

		case errors.Is(err, slots.ErrFacilityNotFound):
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, slots.ErrTransport):
			h.logger.Error("POST /available-slots/ - Facility directory unavailable: %v", err)
			handlers.RespondBadGateway(w, msgDirectoryDown)

		case errors.Is(err, slots.ErrSlotAlreadyDeclared):
			handlers.RespondError(w, http.StatusConflict, handlers.CodeSlotAlreadyDeclared, msgAlreadyDeclared)

		default:
			h.logger.Error("POST /available-slots/ - Failed to declare slot: facility_id=%d, error=%v", req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /available-slots/ - Slot declared: slot_id=%d, facility_id=%d", slot.ID, slot.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}
