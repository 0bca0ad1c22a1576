// Package logging provides structured logging for the Switchboard dashboard.
//
// This package wraps Go's log/slog to provide JSON-formatted logs with
// context propagation support. Because the dashboard owns the terminal,
// nothing is ever written to stdout or stderr while the UI runs: logs go to
// a file when one is configured and are discarded otherwise.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Context propagation (run ID, agent role, pipeline phase)
//   - Log rotation with configurable size limits
//   - Optional gzip compression for rotated logs
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. The [Logger] type
// uses Go's slog internally which is designed for concurrent access. The
// [RotatingWriter] type uses a mutex to protect file operations during
// rotation. Child loggers created via With* methods share the underlying
// writer safely.
//
// # Basic Usage
//
// Create a logger writing to a file:
//
//	logger, err := logging.NewLogger("/path/to/switchboard.log", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("run started", "run_id", runID)
//
// Create child loggers that carry pipeline context:
//
//	runLog := logger.WithRun(runID).WithPhase("supervisor")
//	runLog.Debug("record updated", "role", "supervisor", "status", "processing")
package logging
