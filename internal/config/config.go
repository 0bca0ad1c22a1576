package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete Switchboard configuration
type Config struct {
	TUI      TUIConfig      `mapstructure:"tui"`
	Demo     DemoConfig     `mapstructure:"demo"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "monokai", "dracula", "nord", "solarized", "tokyo-night"
	Theme string `mapstructure:"theme"`
	// TickIntervalMs is how often the dashboard refreshes and feeds the run
	// sequencer (in milliseconds, default: 100, min: 16, max: 1000)
	TickIntervalMs int `mapstructure:"tick_interval_ms"`
	// SidebarWidth is the width of the sidebar panel in columns (default: 28, min: 20, max: 60)
	SidebarWidth int `mapstructure:"sidebar_width"`
}

// DemoConfig controls scripted demo runs
type DemoConfig struct {
	// Autostart plays a demo run as soon as the dashboard opens (default: true).
	// When false the dashboard opens idle and a run starts on demand.
	Autostart bool `mapstructure:"autostart"`
	// Speed is the playback rate for run scripts (default: 1.0)
	// 2.0 plays runs twice as fast; values must be in (0, 10]
	Speed float64 `mapstructure:"speed"`
	// Seed fixes the demo data generator for reproducible runs (default: 0 = random)
	Seed int64 `mapstructure:"seed"`
}

// SnapshotConfig controls loading pipeline state from a file
type SnapshotConfig struct {
	// Path is a YAML snapshot file to display instead of demo data.
	// Empty means no snapshot; the dashboard self-seeds from demo data.
	Path string `mapstructure:"path"`
	// Watch reloads the snapshot when the file changes on disk (default: true)
	// Only applies when path is set.
	Watch bool `mapstructure:"watch"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// File is the log file path. Empty uses <config dir>/logs/switchboard.log.
	// Supports ~ for home directory expansion. Logs never go to the terminal:
	// the dashboard owns it.
	File string `mapstructure:"file"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 5)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 2)
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated backup files (default: false)
	Compress bool `mapstructure:"compress"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:          "default",
			TickIntervalMs: 100,
			SidebarWidth:   28,
		},
		Demo: DemoConfig{
			Autostart: true,
			Speed:     1.0,
			Seed:      0, // Random demo data each launch
		},
		Snapshot: SnapshotConfig{
			Path:  "", // Empty means demo data
			Watch: true,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			File:       "", // Empty means <config dir>/logs/switchboard.log
			MaxSizeMB:  5,
			MaxBackups: 2,
			Compress:   false,
		},
	}
}

// TickInterval returns the dashboard refresh interval as a time.Duration
func (t *TUIConfig) TickInterval() time.Duration {
	return time.Duration(t.TickIntervalMs) * time.Millisecond
}

// ResolveFile returns the resolved log file path.
// If File is empty, it returns the default path under the config directory.
// If File starts with ~, it expands to the user's home directory.
// If logging is disabled it returns "" so the logger discards output.
func (l *LoggingConfig) ResolveFile() string {
	if !l.Enabled {
		return ""
	}
	if l.File == "" {
		return filepath.Join(ConfigDir(), "logs", "switchboard.log")
	}

	path := l.File
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}
	return path
}

// ResolvePath returns the snapshot path with ~ expanded to the user's home
// directory. Empty stays empty.
func (s *SnapshotConfig) ResolvePath() string {
	path := s.Path
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.tick_interval_ms", defaults.TUI.TickIntervalMs)
	viper.SetDefault("tui.sidebar_width", defaults.TUI.SidebarWidth)

	// Demo defaults
	viper.SetDefault("demo.autostart", defaults.Demo.Autostart)
	viper.SetDefault("demo.speed", defaults.Demo.Speed)
	viper.SetDefault("demo.seed", defaults.Demo.Seed)

	// Snapshot defaults
	viper.SetDefault("snapshot.path", defaults.Snapshot.Path)
	viper.SetDefault("snapshot.watch", defaults.Snapshot.Watch)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "switchboard")
	}
	// Fall back to ~/.config/switchboard
	home, err := os.UserHomeDir()
	if err != nil {
		return ".switchboard"
	}
	return filepath.Join(home, ".config", "switchboard")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidThemes returns the list of valid theme names.
// Must match the themes registered in tui/styles (listed here to avoid a
// circular import).
func ValidThemes() []string {
	return []string{"default", "monokai", "dracula", "nord", "solarized", "tokyo-night"}
}

// IsValidTheme checks if the given theme name is valid
func IsValidTheme(theme string) bool {
	for _, valid := range ValidThemes() {
		if theme == valid {
			return true
		}
	}
	return false
}
