package saver

import (
	"encoding/json"
	"os"
)

// JSONFactory writes one JSON object per line. Recordings can hold millions
// of sample rows, so rows are encoded as they arrive rather than buffered
// into a single document.
type JSONFactory struct{}

func (JSONFactory) Extension() string { return "json" }

func (JSONFactory) Open(path string) (RowSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &jsonSink{f: f, enc: json.NewEncoder(f)}, nil
}

type jsonRow struct {
	Timestamp string              `json:"timestamp"`
	Values    map[string]*float32 `json:"values"`
}

type jsonSink struct {
	f      *os.File
	enc    *json.Encoder
	labels []string
}

func (s *jsonSink) Begin(labels, units []string) error {
	s.labels = labels
	header := struct {
		Channels []string `json:"channels"`
		Units    []string `json:"units"`
	}{Channels: labels, Units: units}
	return s.enc.Encode(header)
}

func (s *jsonSink) Write(row Row) error {
	out := jsonRow{
		Timestamp: row.Timestamp,
		Values:    make(map[string]*float32, len(row.Values)),
	}
	for j, v := range row.Values {
		if v.Missing {
			out.Values[s.labels[j]] = nil
		} else {
			f := v.F
			out.Values[s.labels[j]] = &f
		}
	}
	return s.enc.Encode(out)
}

func (s *jsonSink) Close() error {
	return s.f.Close()
}
