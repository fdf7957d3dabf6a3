// Package config loads notifier configuration from defaults, the global
// config file, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the name of the optional global config file.
const ConfigFileName = "config.json"

// Configuration holds the resolved notifier settings.
type Configuration struct {
	// Sound is the default notification sound name (macOS sound set).
	Sound string `koanf:"sound" validate:"required"`
	// Editor is the editor identifier used to build click-to-open commands.
	Editor string `koanf:"editor" validate:"required"`
	// DataDir holds the task database and the rotating log.
	DataDir string `koanf:"data_dir" validate:"required"`
	// DeliveryTimeoutSecs bounds each notification transport call.
	DeliveryTimeoutSecs int `koanf:"delivery_timeout_secs" validate:"min=1,max=60"`
	// BusyTimeoutMillis bounds waits on the SQLite write lock.
	BusyTimeoutMillis int `koanf:"busy_timeout_millis" validate:"min=1,max=60000"`
	// LogMaxSizeMB is the rotation threshold for the notifier log.
	LogMaxSizeMB int `koanf:"log_max_size_mb" validate:"min=1"`
	// LogMaxBackups is how many rotated log files to keep.
	LogMaxBackups int `koanf:"log_max_backups" validate:"min=0"`
}

// DBPath returns the task database location inside DataDir.
func (c *Configuration) DBPath() string {
	return filepath.Join(c.DataDir, "sessions.db")
}

// LogPath returns the rotating log location inside DataDir.
func (c *Configuration) LogPath() string {
	return filepath.Join(c.DataDir, "notifier.log")
}

// Load loads configuration from global config and environment sources.
// Priority: environment variables > global config file > defaults.
func Load() (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".claude", "notifier", ConfigFileName)
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("NOTIFIER_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Legacy env names used by the hook templates take precedence over
	// everything else so installed hooks keep working unchanged.
	if sound := os.Getenv("NOTIFICATION_SOUND"); sound != "" {
		cfg.Sound = sound
	}
	if editor := os.Getenv("NOTIFICATION_EDITOR"); editor != "" {
		cfg.Editor = editor
	}

	cfg.DataDir = expandHomePath(cfg.DataDir)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: NOTIFIER_LOG_MAX_BACKUPS -> log_max_backups
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "NOTIFIER_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
