package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to <dir>/quadro.log.
// Records are written as leveled text lines. The returned closer releases
// the log file.
func Init(dir string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	logPath := filepath.Join(dir, "quadro.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	// charm levels share slog's numeric values
	handler := charmlog.NewWithOptions(file, charmlog.Options{
		Level:           charmlog.Level(level),
		Formatter:       charmlog.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "quadro",
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}
