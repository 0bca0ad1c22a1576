package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tui.sidebar_width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateDemo()...)
	errors = append(errors, c.validateSnapshot()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !IsValidTheme(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	// Tick interval bounds: faster than 16ms burns CPU for no visible gain,
	// slower than 1s makes runs visibly stutter.
	const minTickInterval = 16
	const maxTickInterval = 1000
	if c.TUI.TickIntervalMs < minTickInterval {
		errors = append(errors, ValidationError{
			Field:   "tui.tick_interval_ms",
			Value:   c.TUI.TickIntervalMs,
			Message: fmt.Sprintf("must be at least %dms", minTickInterval),
		})
	}
	if c.TUI.TickIntervalMs > maxTickInterval {
		errors = append(errors, ValidationError{
			Field:   "tui.tick_interval_ms",
			Value:   c.TUI.TickIntervalMs,
			Message: fmt.Sprintf("exceeds maximum of %dms", maxTickInterval),
		})
	}

	// Sidebar width validation (0 means use default, which is valid).
	// These values must match tui.SidebarMinWidth and tui.SidebarMaxWidth
	// (defined separately to avoid circular import).
	const minSidebarWidth = 20
	const maxSidebarWidth = 60
	if c.TUI.SidebarWidth != 0 {
		if c.TUI.SidebarWidth < minSidebarWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.sidebar_width",
				Value:   c.TUI.SidebarWidth,
				Message: fmt.Sprintf("must be at least %d columns", minSidebarWidth),
			})
		}
		if c.TUI.SidebarWidth > maxSidebarWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.sidebar_width",
				Value:   c.TUI.SidebarWidth,
				Message: fmt.Sprintf("exceeds maximum of %d columns", maxSidebarWidth),
			})
		}
	}

	return errors
}

// validateDemo validates the DemoConfig
func (c *Config) validateDemo() []ValidationError {
	var errors []ValidationError

	const maxSpeed = 10.0
	if c.Demo.Speed <= 0 {
		errors = append(errors, ValidationError{
			Field:   "demo.speed",
			Value:   c.Demo.Speed,
			Message: "must be positive",
		})
	}
	if c.Demo.Speed > maxSpeed {
		errors = append(errors, ValidationError{
			Field:   "demo.speed",
			Value:   c.Demo.Speed,
			Message: fmt.Sprintf("exceeds maximum of %v", maxSpeed),
		})
	}

	if c.Demo.Seed < 0 {
		errors = append(errors, ValidationError{
			Field:   "demo.seed",
			Value:   c.Demo.Seed,
			Message: "must be non-negative (0 picks a random seed)",
		})
	}

	return errors
}

// validateSnapshot validates the SnapshotConfig
func (c *Config) validateSnapshot() []ValidationError {
	var errors []ValidationError

	if c.Snapshot.Path != "" {
		path := c.Snapshot.Path

		if strings.ContainsRune(path, '\x00') {
			errors = append(errors, ValidationError{
				Field:   "snapshot.path",
				Value:   path,
				Message: "path contains invalid null character",
			})
		}

		// Reasonable path length limit (most filesystems have limits around 4096)
		const maxPathLength = 4096
		if len(path) > maxPathLength {
			errors = append(errors, ValidationError{
				Field:   "snapshot.path",
				Value:   path,
				Message: fmt.Sprintf("path exceeds maximum length of %d characters", maxPathLength),
			})
		}
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	// Validate log level
	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	// Max size must be positive
	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	// Reasonable upper bound for log file size
	const maxLogSizeMB = 1000 // 1GB
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	// Max backups must be non-negative
	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
