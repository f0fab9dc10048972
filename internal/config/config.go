// Package config handles the XDG configuration directory and user settings.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// SettingsFile is the optional settings filename inside the config directory.
	SettingsFile = "config.yml"
)

// Config holds configuration paths and settings.
// Settings come from SettingsFile, then TODO_* environment variables.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug" env:"TODO_DEBUG"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"quiet" env:"TODO_QUIET"`

	// SkipPause disables the "Press Enter to continue" prompt between actions.
	SkipPause bool `yaml:"skip_pause" env:"TODO_SKIP_PAUSE"`

	// SkipConfirm deletes tasks without asking for confirmation.
	SkipConfirm bool `yaml:"skip_confirm" env:"TODO_SKIP_CONFIRM"`
}

// New creates a Config for the default or specified config directory and
// loads its settings. If configDir is empty, uses XDG_CONFIG_HOME/todo or
// $HOME/.config/todo. A missing settings file is not an error.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{}

	if hasSettings(dir) {
		if err := cleanenv.ReadConfig(filepath.Join(dir, SettingsFile), cfg); err != nil {
			return nil, fmt.Errorf("read %s: %w", SettingsFile, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg.Dir = dir
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

func hasSettings(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, SettingsFile))
	return err == nil
}

// Logger returns a debug logger writing to w, or discarding when Debug is off.
func (c *Config) Logger(w io.Writer) *log.Logger {
	if !c.Debug {
		w = io.Discard
	}
	return log.New(w, "debug: ", 0)
}
