package app

import (
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	actor  string
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithActor sets the name recorded on block and unblock ledger entries
func WithActor(actor string) Option {
	return func(cfg *appConfig) {
		cfg.actor = actor
	}
}
