package revoke_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/slots"
)

const (
	msgInvalidSlotID = "некорректный ID окна"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "отзывать окна может только администратор"
	msgNotFound      = "окно не найдено"
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

// Handle DELETE /available-slots/{id}/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /available-slots/{id}/ - %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Revoke(r.Context(), actor, slotID); err != nil {
		switch {
		case errors.Is(err, slots.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, slots.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /available-slots/{id}/ - Failed to revoke slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /available-slots/{id}/ - Slot revoked: slot_id=%d, user_id=%d", slotID, actor.UserID)
	w.WriteHeader(http.StatusNoContent)
}
