package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/quadro/internal/types"
)

// isolate points every lookup Load performs at a fresh temp directory
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("HOME", tempDir)
	t.Setenv(EnvDatabasePath, "")
	t.Setenv(EnvBoard, "")
	t.Setenv(EnvThemeFile, "")
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "quadro")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if want := filepath.Join(home, ".quadro", "quadro.db"); cfg.DatabasePath != want {
		t.Errorf("DatabasePath = %s, want %s", cfg.DatabasePath, want)
	}
	if want := filepath.Join(home, ".quadro", "logs"); cfg.LogDir != want {
		t.Errorf("LogDir = %s, want %s", cfg.LogDir, want)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.ColorScheme.Accent != "#874BFD" {
		t.Errorf("Accent = %s, want default preset accent", cfg.ColorScheme.Accent)
	}
	if cfg.DefaultBoard != 0 {
		t.Errorf("DefaultBoard = %d, want 0", cfg.DefaultBoard)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `database_path: ~/boards/work.db
log_level: debug
theme:
  preset: monochrome
  accent: "#00FF00"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if want := filepath.Join(home, "boards", "work.db"); cfg.DatabasePath != want {
		t.Errorf("DatabasePath = %s, want %s", cfg.DatabasePath, want)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
	if cfg.ColorScheme.Accent != "#00FF00" {
		t.Errorf("Accent = %s, want #00FF00", cfg.ColorScheme.Accent)
	}
	// Unset colors come from the chosen preset
	if cfg.ColorScheme.Title != "#FFFFFF" {
		t.Errorf("Title = %s, want monochrome #FFFFFF", cfg.ColorScheme.Title)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "log_level: [unterminated\n")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail on malformed YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "database_path: /var/lib/quadro.db\n")
	t.Setenv(EnvDatabasePath, "/tmp/override.db")
	t.Setenv(EnvBoard, "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DatabasePath != "/tmp/override.db" {
		t.Errorf("DatabasePath = %s, want env override", cfg.DatabasePath)
	}
	if cfg.DefaultBoard != types.BoardID(7) {
		t.Errorf("DefaultBoard = %d, want 7", cfg.DefaultBoard)
	}
}

func TestEnvBoardInvalid(t *testing.T) {
	isolate(t)

	for _, raw := range []string{"abc", "0", "-3"} {
		t.Setenv(EnvBoard, raw)
		if _, err := Load(); err == nil {
			t.Errorf("Load() with %s=%q should fail", EnvBoard, raw)
		}
	}
}

func TestThemeFileLoading(t *testing.T) {
	home := isolate(t)

	themePath := filepath.Join(home, "theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  warning: "#FFA500"
`)
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Warning != "#FFA500" {
		t.Errorf("Expected warning to be #FFA500, got %s", cfg.ColorScheme.Warning)
	}
	if cfg.ColorScheme.Normal != "#D0D0D0" {
		t.Errorf("Expected normal to fall back to default, got %s", cfg.ColorScheme.Normal)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.LogLevel = "warn"
	cfg.DefaultBoard = 3
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if loaded.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", loaded.LogLevel)
	}
	if loaded.DefaultBoard != 0 {
		t.Errorf("DefaultBoard should not be persisted, got %d", loaded.DefaultBoard)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.level}
			if got := cfg.SlogLevel(); got != tt.want {
				t.Errorf("SlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
