package edf

import "fmt"

// ReadError reports a truncated or otherwise unreadable stream.
type ReadError struct {
	Offset int64 // byte offset at which the read started
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read at offset %d: %v", e.Offset, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports non-numeric content in a header field that is expected
// to be numeric.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DateTimeError reports header date/time fields that do not form a valid
// calendar date or time of day.
type DateTimeError struct {
	Field string
	Value int
}

func (e *DateTimeError) Error() string {
	return fmt.Sprintf("invalid %s: %d", e.Field, e.Value)
}

// MismatchedSignalsError reports a recording whose channels disagree on the
// number of samples per data record.
type MismatchedSignalsError struct {
	File string
}

func (e *MismatchedSignalsError) Error() string {
	return fmt.Sprintf("%s: not all signals have the same number of samples per record", e.File)
}
