// Package saver writes converted sample rows to tabular output files.
// High-level code injects a Factory; the conversion pipeline depends only on
// the RowSink interface.
package saver

import "strings"

// Value is one cell of an output row. Missing marks the reserved
// out-of-calibration sentinel; sinks render it as an absent value.
type Value struct {
	F       float32
	Missing bool
}

// Row is one sample instant across all channels, in declared channel order.
// Rows are ephemeral: sinks must not retain them after Write returns.
type Row struct {
	Timestamp string
	Values    []Value
}

// RowSink receives the rows of one converted recording in strict time
// order. Begin is called exactly once, before any row.
type RowSink interface {
	Begin(labels, units []string) error
	Write(row Row) error
	Close() error
}

// Factory opens a sink writing one output file.
type Factory interface {
	Open(path string) (RowSink, error)
	Extension() string
}

// NewFactory creates the implementation for a format (csv, parquet, json).
// Returns nil if the format is not supported.
func NewFactory(format string) Factory {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVFactory{}
	case "parquet":
		return ParquetFactory{}
	case "json":
		return JSONFactory{}
	default:
		return nil
	}
}
