package list_slots

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/slots"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/slots/models"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, req *models.ListSlotsRequest) ([]models.SlotResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SlotResponse), args.Error(1)
}

func TestHandle(t *testing.T) {
	svc := new(mockService)
	svc.On("List", mock.Anything, mock.MatchedBy(func(r *models.ListSlotsRequest) bool {
		return *r.FacilityID == 3 && r.Date == nil
	})).Return([]models.SlotResponse{{ID: 1, FacilityID: 3, Date: "2025-06-02", StartTime: "09:00", EndTime: "12:00"}}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewDiscard()).Handle(rec, httptest.NewRequest(http.MethodGet, "/available-slots/?facility_id=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"start_time":"09:00"`)
}

func TestHandle_NoSlotsIsEmptyList(t *testing.T) {
	svc := new(mockService)
	svc.On("List", mock.Anything, mock.Anything).Return([]models.SlotResponse{}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewDiscard()).Handle(rec, httptest.NewRequest(http.MethodGet, "/available-slots/?facility_id=3&date=2030-01-01", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	svc := new(mockService)
	svc.On("List", mock.Anything, mock.MatchedBy(func(r *models.ListSlotsRequest) bool { return r.Date != nil })).
		Return(nil, fmt.Errorf("%w: date must be YYYY-MM-DD", slots.ErrInvalidInput))
	svc.On("List", mock.Anything, mock.MatchedBy(func(r *models.ListSlotsRequest) bool { return r.Date == nil })).
		Return(nil, fmt.Errorf("%w: db", slots.ErrInternal))
	h := NewHandler(svc, logger.NewDiscard())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/available-slots/?facility_id=0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/available-slots/?date=tomorrow", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/available-slots/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
