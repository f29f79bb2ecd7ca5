package convert

import (
	"os"
	"strings"
	"time"
)

// SuccessMessage is the marker appended for every cleanly converted file.
const SuccessMessage = "File parsed successfully!"

// StatusLog is the append-only per-file outcome log: one line per file with
// a timestamp, the file path, and either the success marker or the failure
// description. Fields are always quoted and joined with ':'. Append is not
// safe for concurrent use; the batch driver funnels all entries through a
// single goroutine.
type StatusLog struct {
	f *os.File
}

func OpenStatusLog(path string) (*StatusLog, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &StatusLog{f: f}, nil
}

// Append writes one outcome line for the given file.
func (l *StatusLog) Append(at time.Time, path, message string) error {
	line := quoteField(at.Format("2006-01-02T15:04:05")) + ":" +
		quoteField(path) + ":" +
		quoteField(message) + "\n"
	_, err := l.f.WriteString(line)
	return err
}

func (l *StatusLog) Close() error {
	return l.f.Close()
}

// quoteField quotes unconditionally, doubling embedded quotes per delimited
// text convention. encoding/csv only quotes when it has to, so the three
// fields are rendered by hand.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
