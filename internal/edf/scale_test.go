package edf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleEndpointIdentity(t *testing.T) {
	// digital minima stay above the sentinel, which is always missing
	bounds := []Bounds{
		{DigitalMin: -2048, DigitalMax: 2047, PhysicalMin: -500, PhysicalMax: 500},
		{DigitalMin: -32767, DigitalMax: 32767, PhysicalMin: -200, PhysicalMax: 200},
		{DigitalMin: 0, DigitalMax: 1023, PhysicalMin: 34.5, PhysicalMax: 40.5},
	}
	for _, b := range bounds {
		v, ok := b.Scale(int16(b.DigitalMin))
		require.True(t, ok)
		assert.Equal(t, b.PhysicalMin, v)

		v, ok = b.Scale(int16(b.DigitalMax))
		require.True(t, ok)
		assert.Equal(t, b.PhysicalMax, v)
	}
}

func TestScaleSentinelIsMissing(t *testing.T) {
	bounds := []Bounds{
		{DigitalMin: -32768, DigitalMax: 32767, PhysicalMin: -200, PhysicalMax: 200},
		{DigitalMin: 0, DigitalMax: 100, PhysicalMin: 0, PhysicalMax: 1},
		{DigitalMin: 5, DigitalMax: 5, PhysicalMin: -1, PhysicalMax: 1},
	}
	for _, b := range bounds {
		_, ok := b.Scale(Sentinel)
		assert.False(t, ok)
	}
}

func TestScaleMidpoint(t *testing.T) {
	b := Bounds{DigitalMin: -32768, DigitalMax: 32767, PhysicalMin: -200, PhysicalMax: 200}

	v, ok := b.Scale(0)
	require.True(t, ok)
	assert.InDelta(t, 0.003, v, 0.001)

	v, ok = b.Scale(16384)
	require.True(t, ok)
	assert.InDelta(t, 100.004, v, 0.001)
}

// Equal digital bounds divide by zero; the result propagates unguarded.
func TestScaleDegenerateDigitalRange(t *testing.T) {
	b := Bounds{DigitalMin: 10, DigitalMax: 10, PhysicalMin: 0, PhysicalMax: 100}

	v, ok := b.Scale(20)
	require.True(t, ok)
	assert.True(t, math.IsInf(float64(v), 1))
}
