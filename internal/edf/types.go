// Package edf decodes EDF waveform recordings: a fixed-layout ASCII header,
// a field-major signal metadata table, and binary data records of
// little-endian 16-bit samples.
package edf

import (
	"math"
	"time"
)

// Sentinel is the reserved digital value meaning "missing/out of
// calibration range".
const Sentinel int16 = math.MinInt16

// Bounds holds the calibration range of one channel. DigitalMin and
// DigitalMax must differ for the scaling to be well defined; the scaler does
// not guard the division.
type Bounds struct {
	DigitalMin  float32
	DigitalMax  float32
	PhysicalMin float32
	PhysicalMax float32
}

// Channel is one recorded signal and its calibration metadata.
type Channel struct {
	Label            string
	Unit             string
	Bounds           Bounds
	SamplesPerRecord int
}

// Header is the recording-level metadata from the fixed 256-byte header.
type Header struct {
	Start          time.Time // start instant of the recording
	DataRecords    int       // number of data records in the stream
	RecordDuration int       // duration of one data record, in seconds
	SignalCount    int       // number of channels per data record
}
