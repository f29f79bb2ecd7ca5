package app

import (
	"fmt"

	"edf-export/internal/convert"
	"edf-export/internal/saver"
)

// ProvideConfig loads and validates config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ProvideSinkFactory creates the output-format factory from config (for
// Wire). Returns an error if SaveFormat is not supported.
func ProvideSinkFactory(cfg *Config) (saver.Factory, error) {
	f := saver.NewFactory(cfg.SaveFormat)
	if f == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, parquet, json)", cfg.SaveFormat)
	}
	return f, nil
}

// ProvideStatusLog opens the append-only status log (for Wire). Caller must
// close it when shutting down.
func ProvideStatusLog(cfg *Config) (*convert.StatusLog, error) {
	return convert.OpenStatusLog(cfg.StatusFile)
}
