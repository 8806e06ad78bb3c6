package get_facilities

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/facilityservice"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type stubDirectory struct {
	facilities []domain.Facility
	err        error
}

func (s stubDirectory) ListFacilities(context.Context) ([]domain.Facility, error) {
	return s.facilities, s.err
}

func TestHandle(t *testing.T) {
	dir := stubDirectory{facilities: []domain.Facility{{ID: 1, Name: "Tennis court"}, {ID: 2, Name: "Pool"}}}

	rec := httptest.NewRecorder()
	NewHandler(dir, logger.NewDiscard()).Handle(rec, httptest.NewRequest(http.MethodGet, "/facilities/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Tennis court"},{"id":2,"name":"Pool"}]`, rec.Body.String())
}

func TestHandle_Empty(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(stubDirectory{}, logger.NewDiscard()).Handle(rec, httptest.NewRequest(http.MethodGet, "/facilities/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_TransportError(t *testing.T) {
	dir := stubDirectory{err: errors.Join(facilityservice.ErrTransport, errors.New("connection refused"))}

	rec := httptest.NewRecorder()
	NewHandler(dir, logger.NewDiscard()).Handle(rec, httptest.NewRequest(http.MethodGet, "/facilities/", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"TRANSPORT_ERROR"`)
}
