package edf

import (
	"math"
	"time"
)

// Clock produces the timestamp of each successive sample row. State is one
// millisecond-resolution instant plus a fixed per-sample interval; Advance
// is called once per emitted row, after the row is built from the
// pre-advance instant.
type Clock struct {
	seconds int64 // Unix seconds
	millis  int16 // always in [0, 1000)
	stepSec int64
	stepMS  int16
}

// NewClock builds a sequencer starting at start. The per-sample interval is
// 1000 × recordDuration ∕ samplesPerRecord milliseconds, truncated through a
// 16-bit integer before being split into whole seconds and a millisecond
// remainder. The truncation (and its saturation at the int16 range) loses
// sub-millisecond precision and is kept as-is; correcting it would change
// the timestamps of every long recording.
func NewClock(start time.Time, recordDuration, samplesPerRecord int) *Clock {
	interval := saturateInt16(1000 * float32(recordDuration) / float32(samplesPerRecord))
	return &Clock{
		seconds: start.Unix(),
		stepSec: int64(interval / 1000),
		stepMS:  interval % 1000,
	}
}

// saturateInt16 converts a float to int16 by truncation, clamping values
// outside the representable range.
func saturateInt16(f float32) int16 {
	switch {
	case f >= math.MaxInt16:
		return math.MaxInt16
	case f <= math.MinInt16:
		return math.MinInt16
	case f != f: // NaN
		return 0
	}
	return int16(f)
}

// Timestamp formats the current instant as an ISO-8601 local date-time
// string at second precision.
func (c *Clock) Timestamp() string {
	return time.Unix(c.seconds, 0).UTC().Format("2006-01-02T15:04:05")
}

// Advance moves the instant forward by one sample interval, carrying whole
// seconds so the millisecond field stays in [0, 1000).
func (c *Clock) Advance() {
	c.seconds += c.stepSec
	c.millis += c.stepMS
	if c.millis >= 1000 {
		c.seconds += int64(c.millis / 1000)
		c.millis %= 1000
	}
}

// Step reports the per-sample interval after truncation.
func (c *Clock) Step() time.Duration {
	return time.Duration(c.stepSec)*time.Second + time.Duration(c.stepMS)*time.Millisecond
}
