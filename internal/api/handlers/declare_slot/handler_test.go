package declare_slot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/slots"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/slots/models"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Declare(ctx context.Context, actor domain.Actor, req *models.DeclareSlotRequest) (*models.SlotResponse, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SlotResponse), args.Error(1)
}

const body = `{"facility_id":3,"date":"2025-06-02","start_time":"09:00","end_time":"12:00"}`

var admin = domain.Actor{UserID: 1, Role: domain.RoleAdmin}

func serve(svc SlotService, payload string, actor *domain.Actor) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/available-slots/", strings.NewReader(payload))
	if actor != nil {
		req = req.WithContext(middleware.WithActor(req.Context(), *actor))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewDiscard()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := new(mockService)
	svc.On("Declare", mock.Anything, admin, &models.DeclareSlotRequest{
		FacilityID: 3, Date: "2025-06-02", StartTime: "09:00", EndTime: "12:00",
	}).Return(&models.SlotResponse{ID: 11, FacilityID: 3, Date: "2025-06-02", StartTime: "09:00", EndTime: "12:00"}, nil)

	rec := serve(svc, body, &admin)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp models.SlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not admin", slots.ErrAccessDenied, http.StatusForbidden, handlers.CodeForbidden},
		{"bad window", fmt.Errorf("%w: start_time must be before end_time", slots.ErrInvalidInput), http.StatusBadRequest, handlers.CodeInvalidInput},
		{"past date", slots.ErrPastDate, http.StatusUnprocessableEntity, handlers.CodePastDate},
		{"unknown facility", slots.ErrFacilityNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"directory down", fmt.Errorf("%w: timeout", slots.ErrTransport), http.StatusBadGateway, handlers.CodeTransportError},
		{"duplicate", slots.ErrSlotAlreadyDeclared, http.StatusConflict, handlers.CodeSlotAlreadyDeclared},
		{"internal", fmt.Errorf("%w: db", slots.ErrInternal), http.StatusInternalServerError, handlers.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Declare", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(svc, body, &admin)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestHandle_BadRequests(t *testing.T) {
	svc := new(mockService)

	assert.Equal(t, http.StatusUnauthorized, serve(svc, body, nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, `[]`, &admin).Code)
	svc.AssertNotCalled(t, "Declare", mock.Anything, mock.Anything, mock.Anything)
}
