package convert

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// WriteRunReport persists the batch outcome next to the converted output:
// the converted paths in .lastrun.success.json and per-file failure reasons
// in .lastrun.failed.json. Either file is only written when non-empty.
func WriteRunReport(outDir string, s Summary) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if len(s.Converted) > 0 {
		p := filepath.Join(outDir, ".lastrun.success.json")
		data, err := json.MarshalIndent(s.Converted, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return err
		}
		slog.Info("report wrote success", "path", p, "files", len(s.Converted))
	}
	if len(s.Failures) > 0 {
		p := filepath.Join(outDir, ".lastrun.failed.json")
		data, err := json.MarshalIndent(s.Failures, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return err
		}
		slog.Info("report wrote failed", "path", p, "count", len(s.Failures))
	}
	return nil
}
