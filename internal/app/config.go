package app

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds application configuration from env.
type Config struct {
	OutDir     string `validate:"required"`
	SaveFormat string `validate:"oneof=csv parquet json"`
	StatusFile string `validate:"required"`
	LogLevel   string `validate:"oneof=debug info warn error"`
	Workers    int    `validate:"min=1"`
}

// LoadConfig reads config from environment.
func LoadConfig() *Config {
	cfg := &Config{
		OutDir:     getEnv("OUT_DIR", "edf_to_csv_files"),
		SaveFormat: getEnv("SAVE_FORMAT", "csv"),
		StatusFile: getEnv("STATUS_FILE", "status.txt"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Workers:    1,
	}
	if w := os.Getenv("WORKERS"); w != "" {
		if v, err := strconv.Atoi(w); err == nil && v >= 1 {
			cfg.Workers = v
		}
	}
	return cfg
}

// Validate checks the loaded configuration against the struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
