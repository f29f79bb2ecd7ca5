package edf

import "encoding/binary"

// DecodeRecord reads one data record into dst, which must be sized
// signalCount × samplesPerRecord. Samples are 16-bit little-endian and laid
// out signal-major: all samples of channel 0, then all of channel 1, and so
// on. The sample for channel j at sample index i sits at
// dst[i + j*samplesPerRecord].
func DecodeRecord(c *Cursor, dst []int16) error {
	b, err := c.Read(len(dst) * 2)
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i] = int16(binary.LittleEndian.Uint16(b[i*2:]))
	}
	return nil
}
