package msg

import (
	"time"

	"github.com/opsline/switchboard/internal/pipeline"
)

// TickMsg advances the dashboard clock. One ticker command sends it at
// the configured interval; every animation and demo step derives from it.
type TickMsg time.Time

// ErrMsg wraps an error to be displayed in the status bar.
type ErrMsg struct {
	Err error
}

// SnapshotLoadedMsg carries the result of an explicit snapshot load.
type SnapshotLoadedMsg struct {
	Path  string
	State *pipeline.State
	Err   error
}

// SnapshotChangedMsg carries a reparsed snapshot after the watched file
// changed on disk. The snapshot watcher forwards it into the program.
type SnapshotChangedMsg struct {
	State *pipeline.State
	Err   error
}

// StatusExpiredMsg clears a transient status bar message.
type StatusExpiredMsg struct{}
