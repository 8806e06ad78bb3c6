package get_facilities

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
)

const msgDirectoryDown = "справочник объектов недоступен"

type Handler struct {
	directory FacilityDirectory
	logger    Logger
}

func NewHandler(directory FacilityDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /facilities/
// Любая ошибка справочника - это ошибка транспорта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.directory.ListFacilities(r.Context())
	if err != nil {
		h.logger.Error("GET /facilities/ - Facility directory unavailable: %v", err)
		handlers.RespondBadGateway(w, msgDirectoryDown)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainFacilities(facilities))
}
