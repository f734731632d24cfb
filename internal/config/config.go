// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hy4ri/tasklist/internal/i18n"
	"github.com/hy4ri/tasklist/internal/storage"
	"github.com/hy4ri/tasklist/internal/task"
	"github.com/hy4ri/tasklist/internal/theme"
	"gopkg.in/yaml.v3"
)

const appName = "tasklist"

// Config represents the application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects where tasks and the theme are persisted.
type StorageConfig struct {
	// Backend is "file", "bolt" or "memory"
	Backend string `yaml:"backend"`

	// Path overrides the default data file location
	Path string `yaml:"path,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	Locale               string `yaml:"locale"`
	MessagesFile         string `yaml:"messages_file,omitempty"`
	Theme                string `yaml:"theme,omitempty"` // "light" or "dark"; empty follows the terminal
	DateFormat           string `yaml:"date_format"`
	FeedbackSeconds      int    `yaml:"feedback_seconds"`
	DesktopNotifications bool   `yaml:"desktop_notifications"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: storage.BackendFile,
		},
		UI: UIConfig{
			Locale:          i18n.DefaultLocale,
			DateFormat:      task.DefaultDateLayout,
			FeedbackSeconds: 3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration at path.
// If the file doesn't exist, returns a default configuration.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case storage.BackendFile, storage.BackendBolt, storage.BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if _, err := i18n.Load(c.UI.Locale); err != nil {
		return err
	}

	if c.UI.Theme != "" && !theme.Valid(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (use %q or %q)", c.UI.Theme, theme.Light, theme.Dark)
	}

	if c.UI.FeedbackSeconds <= 0 {
		return fmt.Errorf("feedback_seconds must be positive, got %d", c.UI.FeedbackSeconds)
	}

	if c.UI.DateFormat == "" {
		return fmt.Errorf("date_format must not be empty")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}

// StoragePath returns the configured data file or the default one for the backend.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	name := "tasks.json"
	if c.Storage.Backend == storage.BackendBolt {
		name = "tasks.db"
	}
	return filepath.Join(dir, name), nil
}

// LogPath returns the configured log file or the default one.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+".log"), nil
}
