package saver

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVFactory writes the wide tabular format: a column-name row
// ("timestamp" + labels), a unit row ("YYYY-MM-DD hh:mm:ss" + units), then
// one row per sample instant with empty fields for missing values.
type CSVFactory struct{}

func (CSVFactory) Extension() string { return "csv" }

func (CSVFactory) Open(path string) (RowSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &csvSink{f: f, w: csv.NewWriter(f)}, nil
}

type csvSink struct {
	f      *os.File
	w      *csv.Writer
	fields []string
}

func (s *csvSink) Begin(labels, units []string) error {
	s.fields = make([]string, 0, len(labels)+1)
	if err := s.w.Write(append(append(s.fields, "timestamp"), labels...)); err != nil {
		return err
	}
	return s.w.Write(append(append(s.fields, "YYYY-MM-DD hh:mm:ss"), units...))
}

func (s *csvSink) Write(row Row) error {
	s.fields = append(s.fields[:0], row.Timestamp)
	for _, v := range row.Values {
		if v.Missing {
			s.fields = append(s.fields, "")
		} else {
			s.fields = append(s.fields, FormatValue(v.F))
		}
	}
	return s.w.Write(s.fields)
}

func (s *csvSink) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}

// FormatValue renders a physical value as its shortest decimal text that
// round-trips through float32.
func FormatValue(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
