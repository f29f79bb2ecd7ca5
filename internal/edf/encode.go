package edf

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
)

// EncodeHeader writes the fixed recording header and the field-major signal
// table for the given channels. All ASCII fields are space-padded to the
// widths DecodeHeader and DecodeSignals consume.
func EncodeHeader(w io.Writer, hdr Header, channels []Channel) error {
	bw := bufio.NewWriter(w)

	// identification block: version, patient ID, recording ID
	fmt.Fprintf(bw, "%-8s", "0")
	fmt.Fprintf(bw, "%-80s", "")
	fmt.Fprintf(bw, "%-80s", "")

	fmt.Fprintf(bw, "%-8s", hdr.Start.Format("02.01.06"))
	fmt.Fprintf(bw, "%-8s", hdr.Start.Format("15.04.05"))

	headerBytes := 256 + 256*len(channels)
	fmt.Fprintf(bw, "%-8d", headerBytes)
	fmt.Fprintf(bw, "%-44s", "")

	fmt.Fprintf(bw, "%-8d", hdr.DataRecords)
	fmt.Fprintf(bw, "%-8d", hdr.RecordDuration)
	fmt.Fprintf(bw, "%-4d", len(channels))

	for _, ch := range channels {
		fmt.Fprintf(bw, "%-16s", ch.Label)
	}
	for range channels {
		fmt.Fprintf(bw, "%-80s", "") // transducer type
	}
	for _, ch := range channels {
		fmt.Fprintf(bw, "%-8s", ch.Unit)
	}
	for _, ch := range channels {
		fmt.Fprintf(bw, "%-8s", formatBound(ch.Bounds.PhysicalMin))
	}
	for _, ch := range channels {
		fmt.Fprintf(bw, "%-8s", formatBound(ch.Bounds.PhysicalMax))
	}
	for _, ch := range channels {
		fmt.Fprintf(bw, "%-8s", formatBound(ch.Bounds.DigitalMin))
	}
	for _, ch := range channels {
		fmt.Fprintf(bw, "%-8s", formatBound(ch.Bounds.DigitalMax))
	}
	for range channels {
		fmt.Fprintf(bw, "%-80s", "") // prefiltering
	}
	for _, ch := range channels {
		fmt.Fprintf(bw, "%-8d", ch.SamplesPerRecord)
	}
	for range channels {
		fmt.Fprintf(bw, "%-32s", "") // reserved
	}

	return bw.Flush()
}

// EncodeRecord writes one data record: for each channel in order, its
// samples as 16-bit little-endian values. samples[j] holds the samples of
// channel j for this record.
func EncodeRecord(w io.Writer, samples [][]int16) error {
	bw := bufio.NewWriter(w)
	for _, channel := range samples {
		for _, s := range channel {
			if err := binary.Write(bw, binary.LittleEndian, s); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// formatBound renders a calibration bound into its 8-byte field, falling
// back to two decimals when the shortest representation does not fit.
func formatBound(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if len(s) > 8 {
		s = fmt.Sprintf("%.2f", v)
	}
	if len(s) > 8 {
		s = fmt.Sprintf("%.0f", v)
	}
	return s
}
