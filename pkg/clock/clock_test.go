package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_TodayUsesLocation(t *testing.T) {
	c, err := New("Asia/Tokyo")
	require.NoError(t, err)

	// 2025-01-09 20:00 UTC is already 2025-01-10 in Tokyo
	c.now = func() time.Time { return time.Date(2025, 1, 9, 20, 0, 0, 0, time.UTC) }

	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), c.Today())
}

func TestClock_Fixed(t *testing.T) {
	at := time.Date(2025, 1, 5, 23, 59, 0, 0, time.UTC)
	c := Fixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), c.Today())
}

func TestNew_UnknownZone(t *testing.T) {
	_, err := New("Mars/Olympus")
	assert.Error(t, err)
}
