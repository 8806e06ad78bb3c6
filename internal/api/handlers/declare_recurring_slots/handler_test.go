package declare_recurring_slots

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

func (m *mockService) DeclareRecurring(ctx context.Context, actor domain.Actor, req *models.DeclareRecurringRequest) (*models.RecurringResponse, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecurringResponse), args.Error(1)
}

const body = `{"facility_id":3,"rrule":"FREQ=WEEKLY;BYDAY=MO,WE","from":"2025-06-02","until":"2025-06-30","start_time":"09:00","end_time":"12:00"}`

var admin = domain.Actor{UserID: 1, Role: domain.RoleAdmin}

func serve(svc SlotService, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/available-slots/recurring/", strings.NewReader(payload))
	req = req.WithContext(middleware.WithActor(req.Context(), admin))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewDiscard()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := new(mockService)
	svc.On("DeclareRecurring", mock.Anything, admin, mock.MatchedBy(func(r *models.DeclareRecurringRequest) bool {
		return r.RRule == "FREQ=WEEKLY;BYDAY=MO,WE" && r.From == "2025-06-02" && r.Until == "2025-06-30"
	})).Return(&models.RecurringResponse{
		Created: []models.SlotResponse{{ID: 1}, {ID: 2}},
		Skipped: 7,
	}, nil)

	rec := serve(svc, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp models.RecurringResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Created, 2)
	assert.Equal(t, 7, resp.Skipped)
}

func TestHandle_InvalidRuleExplained(t *testing.T) {
	svc := new(mockService)
	svc.On("DeclareRecurring", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: rule produces no dates in range", slots.ErrInvalidInput))

	rec := serve(svc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "no dates")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{slots.ErrAccessDenied, http.StatusForbidden},
		{slots.ErrPastDate, http.StatusUnprocessableEntity},
		{slots.ErrFacilityNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: refused", slots.ErrTransport), http.StatusBadGateway},
		{fmt.Errorf("%w: db", slots.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := new(mockService)
			svc.On("DeclareRecurring", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.wantStatus, serve(svc, body).Code)
		})
	}
}
