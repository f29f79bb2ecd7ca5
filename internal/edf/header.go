package edf

import (
	"strconv"
	"strings"
	"time"
)

// Fixed header layout, in consumption order. The identification block
// (version, patient and recording IDs) is not used and skipped wholesale;
// likewise the header-byte count and reserved block between the start time
// and the record count.
const (
	identificationBytes = 168 // 8 version + 80 patient ID + 80 recording ID
	reservedHeaderBytes = 52  // 8 header byte count + 44 reserved
)

// DecodeHeader reads the fixed recording header from a cursor positioned at
// offset 0. Years are two-digit and interpreted as 2000+yy.
func DecodeHeader(c *Cursor) (*Header, error) {
	if err := c.Skip(identificationBytes); err != nil {
		return nil, err
	}

	// dd.mm.yy followed by hh.mm.ss, 8 bytes each
	day, err := readDigitPair(c, "start day")
	if err != nil {
		return nil, err
	}
	if err := c.Skip(1); err != nil {
		return nil, err
	}
	month, err := readDigitPair(c, "start month")
	if err != nil {
		return nil, err
	}
	if err := c.Skip(1); err != nil {
		return nil, err
	}
	year, err := readDigitPair(c, "start year")
	if err != nil {
		return nil, err
	}
	year += 2000

	hour, err := readDigitPair(c, "start hour")
	if err != nil {
		return nil, err
	}
	if err := c.Skip(1); err != nil {
		return nil, err
	}
	minute, err := readDigitPair(c, "start minute")
	if err != nil {
		return nil, err
	}
	if err := c.Skip(1); err != nil {
		return nil, err
	}
	second, err := readDigitPair(c, "start second")
	if err != nil {
		return nil, err
	}

	start, err := makeInstant(year, month, day, hour, minute, second)
	if err != nil {
		return nil, err
	}

	if err := c.Skip(reservedHeaderBytes); err != nil {
		return nil, err
	}

	records, err := readPaddedCount(c, 8, "record count")
	if err != nil {
		return nil, err
	}
	duration, err := readPaddedCount(c, 8, "record duration")
	if err != nil {
		return nil, err
	}
	signals, err := readPaddedCount(c, 4, "signal count")
	if err != nil {
		return nil, err
	}

	return &Header{
		Start:          start,
		DataRecords:    records,
		RecordDuration: duration,
		SignalCount:    signals,
	}, nil
}

// readDigitPair reads one two-digit ASCII field.
func readDigitPair(c *Cursor, field string) (int, error) {
	b, err := c.Read(2)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, &ParseError{Field: field, Value: string(b), Err: err}
	}
	return v, nil
}

// makeInstant validates the decoded calendar fields and builds the start
// instant. time.Date normalizes out-of-range components instead of failing,
// so every field is range-checked explicitly first.
func makeInstant(year, month, day, hour, minute, second int) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, &DateTimeError{Field: "start month", Value: month}
	}
	if day < 1 || day > daysInMonth(year, month) {
		return time.Time{}, &DateTimeError{Field: "start day", Value: day}
	}
	if hour < 0 || hour > 23 {
		return time.Time{}, &DateTimeError{Field: "start hour", Value: hour}
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, &DateTimeError{Field: "start minute", Value: minute}
	}
	if second < 0 || second > 59 {
		return time.Time{}, &DateTimeError{Field: "start second", Value: second}
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC), nil
}

func daysInMonth(year, month int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// readPaddedCount reads a space-padded ASCII integer field of the given
// width and parses it as a non-negative count.
func readPaddedCount(c *Cursor, width int, field string) (int, error) {
	b, err := c.Read(width)
	if err != nil {
		return 0, err
	}
	s := strings.TrimSpace(string(b))
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Field: field, Value: s, Err: err}
	}
	if v < 0 {
		return 0, &ParseError{Field: field, Value: s, Err: strconv.ErrRange}
	}
	return v, nil
}
