package convert

import (
	"log/slog"
	"sync"
	"time"

	"edf-export/internal/saver"
)

// Outcome is one file's conversion result.
type Outcome struct {
	Path string
	Err  error // nil on success
}

// Failure records why one file could not be converted.
type Failure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Summary aggregates one batch run.
type Summary struct {
	Converted []string
	Failures  []Failure
}

// Run converts every file with the given number of workers. Files share no
// state, so they convert independently; one file's failure never stops the
// rest. Outcomes are appended to the status log in completion order by a
// single collector goroutine, which keeps log lines from interleaving.
func Run(files []string, outDir string, factory saver.Factory, status *StatusLog, workers int) Summary {
	if workers < 1 {
		workers = 1
	}

	pending := make(chan string, len(files))
	for _, f := range files {
		pending <- f
	}
	close(pending)

	outcomes := make(chan Outcome, workers)

	var collectorWg sync.WaitGroup
	var summary Summary
	collectorWg.Add(1)
	go func() {
		defer collectorWg.Done()
		for o := range outcomes {
			message := SuccessMessage
			if o.Err != nil {
				message = o.Err.Error()
			}
			if err := status.Append(time.Now(), o.Path, message); err != nil {
				slog.Warn("could not append status entry", "path", o.Path, "error", err)
			}
			if o.Err != nil {
				summary.Failures = append(summary.Failures, Failure{Path: o.Path, Reason: o.Err.Error()})
				slog.Error("convert fail", "path", o.Path, "reason", o.Err)
			} else {
				summary.Converted = append(summary.Converted, o.Path)
				slog.Info("convert ok", "path", o.Path)
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for path := range pending {
				outcomes <- Outcome{Path: path, Err: ConvertFile(path, outDir, factory)}
			}
		}()
	}
	wg.Wait()
	close(outcomes)
	collectorWg.Wait()

	slog.Info("summary", "total", len(files), "success", len(summary.Converted), "failed", len(summary.Failures))
	return summary
}
