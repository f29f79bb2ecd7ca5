//go:build wireinject
// +build wireinject

package main

import (
	"edf-export/internal/app"

	"github.com/google/wire"
)

// InitializeApp builds App (Config + sink factory + status log) via Wire.
// Caller must close a.Status when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideSinkFactory,
		app.ProvideStatusLog,
		wire.Struct(new(App), "Config", "Saver", "Status"),
	)
	return nil, nil
}
