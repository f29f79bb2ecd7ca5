// Package convert turns EDF recordings into tabular time-series files and
// drives batches of such conversions.
package convert

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"edf-export/internal/edf"
	"edf-export/internal/saver"
)

// Convert decodes one EDF stream and writes every sample row to the sink in
// strict time order. name identifies the source in errors. A failure
// mid-stream leaves whatever rows were already written in place; the caller
// decides what to do with the partial file.
func Convert(r io.Reader, sink saver.RowSink, name string) error {
	cur := edf.NewCursor(r)

	hdr, err := edf.DecodeHeader(cur)
	if err != nil {
		return err
	}
	channels, err := edf.DecodeSignals(cur, hdr.SignalCount)
	if err != nil {
		return err
	}

	samples := 0
	if len(channels) > 0 {
		samples = channels[0].SamplesPerRecord
	}
	for _, ch := range channels {
		if ch.SamplesPerRecord != samples {
			return &edf.MismatchedSignalsError{File: name}
		}
	}

	clock := edf.NewClock(hdr.Start, hdr.RecordDuration, samples)

	labels := make([]string, len(channels))
	units := make([]string, len(channels))
	for i, ch := range channels {
		labels[i] = ch.Label
		units[i] = ch.Unit
	}
	if err := sink.Begin(labels, units); err != nil {
		return err
	}

	raw := make([]int16, len(channels)*samples)
	row := saver.Row{Values: make([]saver.Value, len(channels))}
	for rec := 0; rec < hdr.DataRecords; rec++ {
		if err := edf.DecodeRecord(cur, raw); err != nil {
			return err
		}
		for i := 0; i < samples; i++ {
			row.Timestamp = clock.Timestamp()
			for j, ch := range channels {
				f, ok := ch.Bounds.Scale(raw[i+j*samples])
				row.Values[j] = saver.Value{F: f, Missing: !ok}
			}
			if err := sink.Write(row); err != nil {
				return err
			}
			clock.Advance()
		}
	}
	return nil
}

// ConvertFile converts one recording into outDir, naming the output after
// the input with the sink's extension.
func ConvertFile(path, outDir string, factory saver.Factory) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	sink, err := factory.Open(filepath.Join(outDir, outputName(path, factory.Extension())))
	if err != nil {
		return err
	}
	convErr := Convert(bufio.NewReader(in), sink, path)
	if err := sink.Close(); convErr == nil {
		convErr = err
	}
	return convErr
}

// outputName replaces the input's extension with the output format's.
func outputName(path, ext string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + ext
}
