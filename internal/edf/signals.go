package edf

import (
	"fmt"
	"strconv"
	"strings"
)

// The signal metadata table is stored field-major: each field slot holds the
// value of that field for every channel before the next slot begins.
var signalFieldWidths = [10]int{16, 80, 8, 8, 8, 8, 8, 80, 8, 32}

// Slots consumed but not captured: transducer type, prefiltering, reserved.
var discardedSlots = map[int]bool{1: true, 7: true, 9: true}

// Captured column indices, in slot order.
const (
	colLabel = iota
	colUnit
	colPhysicalMin
	colPhysicalMax
	colDigitalMin
	colDigitalMax
	colSamples
	capturedColumns
)

// DecodeSignals reads the metadata table for count channels from a cursor
// positioned immediately after the recording header.
func DecodeSignals(c *Cursor, count int) ([]Channel, error) {
	cols, err := readSignalColumns(c, count)
	if err != nil {
		return nil, err
	}
	return channelsFromColumns(cols)
}

// readSignalColumns consumes the field-major table, returning one list per
// captured field slot with count entries each. Every captured value is
// trimmed of surrounding whitespace.
func readSignalColumns(c *Cursor, count int) ([capturedColumns][]string, error) {
	var cols [capturedColumns][]string
	col := 0
	for slot, width := range signalFieldWidths {
		if discardedSlots[slot] {
			if err := c.Skip(width * count); err != nil {
				return cols, err
			}
			continue
		}
		cols[col] = make([]string, count)
		for i := 0; i < count; i++ {
			b, err := c.Read(width)
			if err != nil {
				return cols, err
			}
			cols[col][i] = strings.TrimSpace(string(b))
		}
		col++
	}
	return cols, nil
}

// channelsFromColumns transposes the column-indexed table into per-channel
// records, parsing the calibration bounds and sample counts.
func channelsFromColumns(cols [capturedColumns][]string) ([]Channel, error) {
	channels := make([]Channel, len(cols[colLabel]))
	for i := range channels {
		physMin, err := parseBound(cols[colPhysicalMin][i], i, "physical minimum")
		if err != nil {
			return nil, err
		}
		physMax, err := parseBound(cols[colPhysicalMax][i], i, "physical maximum")
		if err != nil {
			return nil, err
		}
		digMin, err := parseBound(cols[colDigitalMin][i], i, "digital minimum")
		if err != nil {
			return nil, err
		}
		digMax, err := parseBound(cols[colDigitalMax][i], i, "digital maximum")
		if err != nil {
			return nil, err
		}
		samples, err := parseSampleCount(cols[colSamples][i], i)
		if err != nil {
			return nil, err
		}
		channels[i] = Channel{
			Label: cols[colLabel][i],
			Unit:  cols[colUnit][i],
			Bounds: Bounds{
				DigitalMin:  digMin,
				DigitalMax:  digMax,
				PhysicalMin: physMin,
				PhysicalMax: physMax,
			},
			SamplesPerRecord: samples,
		}
	}
	return channels, nil
}

func parseBound(s string, signal int, name string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, &ParseError{Field: fmt.Sprintf("signal %d %s", signal+1, name), Value: s, Err: err}
	}
	return float32(v), nil
}

func parseSampleCount(s string, signal int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		return 0, &ParseError{Field: fmt.Sprintf("signal %d samples per record", signal+1), Value: s, Err: err}
	}
	return v, nil
}
