package saver

import (
	"os"

	"github.com/parquet-go/parquet-go"
)

// ParquetFactory writes long-format sample rows: one record per
// (instant, channel) pair, so the schema is fixed regardless of how many
// channels a recording carries. Missing samples have a null value.
type ParquetFactory struct{}

func (ParquetFactory) Extension() string { return "parquet" }

func (ParquetFactory) Open(path string) (RowSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &parquetSink{f: f, w: parquet.NewGenericWriter[sampleRecord](f)}, nil
}

type sampleRecord struct {
	Timestamp string   `parquet:"timestamp"`
	Channel   string   `parquet:"channel"`
	Unit      string   `parquet:"unit"`
	Value     *float32 `parquet:"value,optional"`
}

type parquetSink struct {
	f      *os.File
	w      *parquet.GenericWriter[sampleRecord]
	labels []string
	units  []string
	batch  []sampleRecord
}

func (s *parquetSink) Begin(labels, units []string) error {
	s.labels = labels
	s.units = units
	s.batch = make([]sampleRecord, len(labels))
	return nil
}

func (s *parquetSink) Write(row Row) error {
	for j := range row.Values {
		rec := sampleRecord{
			Timestamp: row.Timestamp,
			Channel:   s.labels[j],
			Unit:      s.units[j],
		}
		if !row.Values[j].Missing {
			v := row.Values[j].F
			rec.Value = &v
		}
		s.batch[j] = rec
	}
	_, err := s.w.Write(s.batch)
	return err
}

func (s *parquetSink) Close() error {
	if err := s.w.Close(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}
