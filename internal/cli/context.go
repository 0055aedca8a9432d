package cli

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp makes commands run against an existing application container
// instead of opening the configured database. Used by tests.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig stores the loaded configuration for subcommands
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by the root command.
// Without one it loads the config file, falling back to defaults.
func ConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("falling back to default config", "error", err)
		return config.Default()
	}
	return cfg
}

func appFromContext(ctx context.Context) (*app.App, bool) {
	a, ok := ctx.Value(appKey).(*app.App)
	return a, ok && a != nil
}
