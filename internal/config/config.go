package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thenoetrevino/quadro/internal/config/colors"
	"github.com/thenoetrevino/quadro/internal/types"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvDatabasePath = "QUADRO_DB"
	EnvBoard        = "QUADRO_BOARD"
	EnvThemeFile    = "QUADRO_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	DatabasePath string             `yaml:"database_path"`
	LogDir       string             `yaml:"log_dir"`
	LogLevel     string             `yaml:"log_level"`
	ColorScheme  colors.ColorScheme `yaml:"theme"`

	// DefaultBoard is taken from QUADRO_BOARD and never written to disk
	DefaultBoard types.BoardID `yaml:"-"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from QUADRO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	loadThemeFile(&config)

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// SlogLevel maps LogLevel to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// applyEnv overrides file values with QUADRO_* environment variables
func (c *Config) applyEnv() error {
	if path := os.Getenv(EnvDatabasePath); path != "" {
		c.DatabasePath = path
	}

	if raw := os.Getenv(EnvBoard); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return fmt.Errorf("%s must be a positive board id, got %q", EnvBoard, raw)
		}
		c.DefaultBoard = types.BoardID(id)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "quadro", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "quadro", "config.yaml"), nil
}

// dataDir returns ~/.quadro, or a relative .quadro when the home directory is unknown
func dataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".quadro"
	}
	return filepath.Join(homeDir, ".quadro")
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(dataDir(), "quadro.db")
	}
	c.DatabasePath = expandHome(c.DatabasePath)

	if c.LogDir == "" {
		c.LogDir = filepath.Join(dataDir(), "logs")
	}
	c.LogDir = expandHome(c.LogDir)

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	c.ColorScheme.ApplyDefaults()
}
