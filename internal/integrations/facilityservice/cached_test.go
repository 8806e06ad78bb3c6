package facilityservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Facility), args.Error(1)
}

func (m *mockDirectory) GetFacility(ctx context.Context, id int64) (*domain.Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Facility), args.Error(1)
}

// memoryCache простая реализация Cache для тестов
type memoryCache struct {
	list    []domain.Facility
	byID    map[int64]domain.Facility
	readErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{byID: map[int64]domain.Facility{}}
}

func (c *memoryCache) GetList(ctx context.Context) ([]domain.Facility, bool, error) {
	if c.readErr != nil {
		return nil, false, c.readErr
	}
	return c.list, c.list != nil, nil
}

func (c *memoryCache) SetList(ctx context.Context, facilities []domain.Facility) error {
	c.list = facilities
	return nil
}

func (c *memoryCache) Get(ctx context.Context, id int64) (*domain.Facility, bool, error) {
	if c.readErr != nil {
		return nil, false, c.readErr
	}
	f, ok := c.byID[id]
	if !ok {
		return nil, false, nil
	}
	return &f, true, nil
}

func (c *memoryCache) Set(ctx context.Context, facility domain.Facility) error {
	c.byID[facility.ID] = facility
	return nil
}

func TestCachedDirectory_ListHitsDirectoryOnce(t *testing.T) {
	dir := new(mockDirectory)
	facilities := []domain.Facility{{ID: 1, Name: "Pool"}}
	dir.On("ListFacilities", mock.Anything).Return(facilities, nil).Once()

	cached := NewCachedDirectory(dir, newMemoryCache(), logger.NewDiscard())

	for i := 0; i < 3; i++ {
		got, err := cached.ListFacilities(context.Background())
		require.NoError(t, err)
		assert.Equal(t, facilities, got)
	}
	dir.AssertExpectations(t)
}

func TestCachedDirectory_GetNotFoundIsNotCached(t *testing.T) {
	dir := new(mockDirectory)
	dir.On("GetFacility", mock.Anything, int64(9)).Return(nil, ErrFacilityNotFound).Twice()

	cached := NewCachedDirectory(dir, newMemoryCache(), logger.NewDiscard())

	for i := 0; i < 2; i++ {
		_, err := cached.GetFacility(context.Background(), 9)
		assert.ErrorIs(t, err, ErrFacilityNotFound)
	}
	dir.AssertExpectations(t)
}

func TestCachedDirectory_CacheFailureFallsThrough(t *testing.T) {
	dir := new(mockDirectory)
	dir.On("GetFacility", mock.Anything, int64(1)).Return(&domain.Facility{ID: 1, Name: "Hall"}, nil)

	cache := newMemoryCache()
	cache.readErr = errors.New("redis down")
	cached := NewCachedDirectory(dir, cache, logger.NewDiscard())

	facility, err := cached.GetFacility(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Hall", facility.Name)
}
