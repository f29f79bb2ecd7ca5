package edf

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Encoding a synthetic recording and decoding it back must reproduce every
// header and channel field exactly.
func TestHeaderRoundTrip(t *testing.T) {
	hdr := Header{
		Start:          time.Date(2021, time.November, 30, 22, 41, 9, 0, time.UTC),
		DataRecords:    480,
		RecordDuration: 30,
		SignalCount:    2,
	}
	channels := []Channel{
		{
			Label:            "EEG Fpz-Cz",
			Unit:             "uV",
			Bounds:           Bounds{DigitalMin: -2048, DigitalMax: 2047, PhysicalMin: -500, PhysicalMax: 500},
			SamplesPerRecord: 256,
		},
		{
			Label:            "Body temp",
			Unit:             "degC",
			Bounds:           Bounds{DigitalMin: -32768, DigitalMax: 32767, PhysicalMin: 34.5, PhysicalMax: 40.5},
			SamplesPerRecord: 1,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeHeader(&buf, hdr, channels))
	assert.Equal(t, 256+256*len(channels), buf.Len())

	c := NewCursor(bytes.NewReader(buf.Bytes()))
	gotHdr, err := DecodeHeader(c)
	require.NoError(t, err)

	assert.True(t, hdr.Start.Equal(gotHdr.Start), "start %v != %v", gotHdr.Start, hdr.Start)
	assert.Equal(t, hdr.DataRecords, gotHdr.DataRecords)
	assert.Equal(t, hdr.RecordDuration, gotHdr.RecordDuration)
	assert.Equal(t, hdr.SignalCount, gotHdr.SignalCount)

	gotChannels, err := DecodeSignals(c, gotHdr.SignalCount)
	require.NoError(t, err)
	if diff := cmp.Diff(channels, gotChannels); diff != "" {
		t.Errorf("channels mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeRecord(&buf, [][]int16{
		{0, 16384},
		{Sentinel, 100},
	}))

	dst := make([]int16, 4)
	require.NoError(t, DecodeRecord(NewCursor(&buf), dst))
	assert.Equal(t, []int16{0, 16384, Sentinel, 100}, dst)
}
