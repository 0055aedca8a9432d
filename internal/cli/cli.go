package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	owned  bool // App was opened here and must be closed here
}

// NewCLI opens the configured database and builds the application container
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to initialize database", "path", cfg.DatabasePath, "error", err)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:    app.New(db, app.WithLogger(slog.Default())),
		Config: cfg,
		owned:  true,
	}, nil
}

// GetCLIFromContext returns a CLI bound to the app injected with WithApp,
// or opens a new one from the configuration in ctx.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	cfg := ConfigFromContext(ctx)
	if a, ok := appFromContext(ctx); ok {
		return &CLI{App: a, Config: cfg}, nil
	}
	return NewCLI(ctx, cfg)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// Open returns the CLI for cmd, reporting initialization failures through f.
// The returned release func must be deferred by the caller.
func Open(cmd *cobra.Command, f *OutputFormatter) (*CLI, func(), error) {
	c, err := GetCLIFromContext(Context(cmd))
	if err != nil {
		return nil, nil, f.FailWith("INITIALIZATION_ERROR", ExitError, err)
	}
	release := func() {
		if err := c.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}
	return c, release, nil
}
