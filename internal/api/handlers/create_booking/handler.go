package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/availability"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-FacilityBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgFacilityNotFound   = "объект не найден"
	msgDirectoryDown      = "справочник объектов недоступен"
)

var rejectionMessages = map[availability.Reason]string{
	availability.ReasonPastDate:               "нельзя забронировать прошедшую дату",
	availability.ReasonSlotTaken:              "выбранное время уже занято",
	availability.ReasonNoSlotsDeclared:        "на эту дату не объявлено ни одного окна",
	availability.ReasonOutsideAvailableWindow: "время бронирования не помещается ни в одно доступное окно",
}

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /bookings/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, ok := h.parse(w, r, "POST /bookings/")
	if !ok {
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejection *createBooking.RejectionError
		if errors.As(err, &rejection) {
			reason := rejection.Decision.Reason
			h.logger.Warn("POST /bookings/ - Rejected: facility_id=%d, reason=%s", useCaseReq.FacilityID, reason)
			handlers.RespondRejection(w, handlers.RejectionStatus(reason), reason, rejectionMessages[reason], rejection.Decision.Windows)
			return
		}
		h.respondUseCaseError(w, "POST /bookings/", useCaseReq, err)
		return
	}

	h.logger.Info("POST /bookings/ - Booking created successfully: booking_id=%d, user_id=%d, facility_id=%d",
		result.Booking.ID, useCaseReq.Actor.UserID, useCaseReq.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(result.Booking))
}

// HandleCheck POST /bookings/check/
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	useCaseReq, ok := h.parse(w, r, "POST /bookings/check/")
	if !ok {
		return
	}

	result, err := h.useCase.Check(r.Context(), useCaseReq)
	if err != nil {
		h.respondUseCaseError(w, "POST /bookings/check/", useCaseReq, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromCheckResponse(result))
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request, route string) (*createBooking.Request, bool) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return nil, false
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return nil, false
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("%s - Invalid date %q: %v", route, req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return nil, false
	}

	return useCaseReq, true
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, route string, req *createBooking.Request, err error) {
	switch {
	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, createBooking.ErrFacilityNotFound):
		h.logger.Warn("%s - Facility not found: facility_id=%d", route, req.FacilityID)
		handlers.RespondNotFound(w, msgFacilityNotFound)

	case errors.Is(err, createBooking.ErrTransport):
		h.logger.Error("%s - Facility directory unavailable: %v", route, err)
		handlers.RespondBadGateway(w, msgDirectoryDown)

	default:
		h.logger.Error("%s - Failed: user_id=%d, facility_id=%d, error=%v",
			route, req.Actor.UserID, req.FacilityID, err)
		handlers.RespondInternalError(w)
	}
}
