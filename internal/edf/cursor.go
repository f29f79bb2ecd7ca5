package edf

import "io"

// Cursor is a sequential positioned reader over an EDF byte stream. It owns
// the read offset so decode errors can point at the failing byte.
type Cursor struct {
	r   io.Reader
	off int64
	buf []byte
}

func NewCursor(r io.Reader) *Cursor {
	return &Cursor{r: r}
}

// Read consumes exactly n bytes. The returned slice is backed by an internal
// buffer and is only valid until the next call.
func (c *Cursor) Read(n int) ([]byte, error) {
	if cap(c.buf) < n {
		c.buf = make([]byte, n)
	}
	b := c.buf[:n]
	if _, err := io.ReadFull(c.r, b); err != nil {
		return nil, &ReadError{Offset: c.off, Err: err}
	}
	c.off += int64(n)
	return b, nil
}

// Skip consumes and discards exactly n bytes.
func (c *Cursor) Skip(n int) error {
	if _, err := io.CopyN(io.Discard, c.r, int64(n)); err != nil {
		return &ReadError{Offset: c.off, Err: err}
	}
	c.off += int64(n)
	return nil
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int64 { return c.off }
