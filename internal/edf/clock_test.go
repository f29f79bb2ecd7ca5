package edf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clockStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestClockQuarterSecondInterval(t *testing.T) {
	c := NewClock(clockStart, 1, 4)
	require.Equal(t, 250*time.Millisecond, c.Step())

	// four advances accumulate exactly one second
	assert.Equal(t, "2020-01-01T00:00:00", c.Timestamp())
	for i := 0; i < 4; i++ {
		c.Advance()
	}
	assert.Equal(t, "2020-01-01T00:00:01", c.Timestamp())
}

func TestClockCarryAcrossSecondBoundary(t *testing.T) {
	c := NewClock(clockStart, 3, 4) // 750 ms per sample

	c.Advance() // 750 ms
	assert.Equal(t, "2020-01-01T00:00:00", c.Timestamp())
	c.Advance() // 1500 ms, carries to 1 s + 500 ms
	assert.Equal(t, "2020-01-01T00:00:01", c.Timestamp())
	c.Advance() // 2250 ms
	assert.Equal(t, "2020-01-01T00:00:02", c.Timestamp())
	assert.Less(t, c.millis, int16(1000))
	assert.GreaterOrEqual(t, c.millis, int16(0))
}

// 1000/3 ms truncates to 333 ms; the lost fraction is never recovered, so
// three samples fall 1 ms short of a full second.
func TestClockIntervalTruncation(t *testing.T) {
	c := NewClock(clockStart, 1, 3)
	assert.Equal(t, 333*time.Millisecond, c.Step())

	for i := 0; i < 3; i++ {
		c.Advance()
	}
	assert.Equal(t, "2020-01-01T00:00:00", c.Timestamp()) // 999 ms
	c.Advance()
	assert.Equal(t, "2020-01-01T00:00:01", c.Timestamp()) // 1332 ms
}

// Intervals beyond the 16-bit millisecond range clamp at 32767 ms.
func TestClockIntervalSaturation(t *testing.T) {
	c := NewClock(clockStart, 60, 1)
	assert.Equal(t, 32767*time.Millisecond, c.Step())
}

func TestClockWholeSecondInterval(t *testing.T) {
	c := NewClock(clockStart, 2, 2) // 1000 ms per sample

	assert.Equal(t, time.Second, c.Step())
	c.Advance()
	assert.Equal(t, "2020-01-01T00:00:01", c.Timestamp())
	c.Advance()
	assert.Equal(t, "2020-01-01T00:00:02", c.Timestamp())
}
