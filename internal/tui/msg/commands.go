package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opsline/switchboard/internal/pipeline"
)

// Tick returns a command that sends a TickMsg after interval. The model
// reschedules it on receipt, so the dashboard runs on a single ticker
// rather than one timer per pending transition.
func Tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// LoadSnapshotAsync returns a command that reads and parses a snapshot
// file off the UI goroutine.
func LoadSnapshotAsync(path string) tea.Cmd {
	return func() tea.Msg {
		state, err := pipeline.LoadSnapshot(path)
		return SnapshotLoadedMsg{Path: path, State: state, Err: err}
	}
}

// ClearStatusAfter returns a command that expires a transient status bar
// message after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return StatusExpiredMsg{}
	})
}
