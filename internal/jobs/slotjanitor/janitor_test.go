package slotjanitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/pkg/clock"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type fakePurger struct {
	before time.Time
	count  int64
	err    error
}

func (p *fakePurger) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	p.before = before
	return p.count, p.err
}

func TestRunOnce(t *testing.T) {
	purger := &fakePurger{count: 12}
	j := New(purger, clock.Fixed(time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)), 7, time.Second, logger.NewDiscard())

	deleted, err := j.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), purger.before)
}

func TestRunOnce_Error(t *testing.T) {
	purger := &fakePurger{err: errors.New("db down")}
	j := New(purger, clock.Fixed(time.Now()), 0, time.Second, logger.NewDiscard())

	_, err := j.RunOnce(context.Background())

	assert.Error(t, err)
}

func TestStart_InvalidSchedule(t *testing.T) {
	j := New(&fakePurger{}, clock.Fixed(time.Now()), 0, time.Second, logger.NewDiscard())

	assert.Error(t, j.Start("every tuesday"))
}

func TestStartStop(t *testing.T) {
	j := New(&fakePurger{}, clock.Fixed(time.Now()), 0, time.Second, logger.NewDiscard())

	require.NoError(t, j.Start("0 3 * * *"))
	j.Stop()
}
