package update

import (
	"fmt"
	"time"

	"github.com/opsline/switchboard/internal/event"
	"github.com/opsline/switchboard/internal/logging"
	"github.com/opsline/switchboard/internal/pipeline"
	"github.com/opsline/switchboard/internal/tui/msg"
	"github.com/opsline/switchboard/internal/tui/view"
)

// Context provides the interface for update handlers to interact with the
// TUI Model. This allows handlers to modify model state without direct
// coupling to the Model type.
type Context interface {
	// Sequencer returns the demo run sequencer.
	Sequencer() *pipeline.Sequencer

	// ReplaceState swaps the displayed pipeline state for a loaded snapshot.
	ReplaceState(s *pipeline.State)

	// AppendHistory records a finished run in the history list.
	AppendHistory(run view.RunSummary)

	// Logger returns the logger instance (may be nil).
	Logger() *logging.Logger

	// SetStatusMessage sets the transient status bar message.
	SetStatusMessage(text string)

	// ClearStatusMessage clears the transient status bar message.
	ClearStatusMessage()
}

// HandleTick advances the demo sequencer to the tick's timestamp and folds
// the emitted events into model state. Returns true while the run remains
// active and needs further ticks.
func HandleTick(ctx Context, m msg.TickMsg) bool {
	seq := ctx.Sequencer()
	if seq == nil || !seq.Active() {
		return false
	}

	for _, ev := range seq.Advance(time.Time(m)) {
		ApplyEvent(ctx, ev)
	}
	return seq.Active()
}

// ApplyEvent folds a single run event into model state. The sequencer
// already mutated the pipeline state; this covers the derived model
// concerns, history rows and status messages.
func ApplyEvent(ctx Context, ev event.Event) {
	switch e := ev.(type) {
	case event.RunCompletedEvent:
		ctx.AppendHistory(view.RunSummary{
			RunID:      e.RunID,
			Scenario:   e.Scenario,
			Outcome:    view.OutcomeComplete,
			Confidence: e.Confidence,
			ElapsedMS:  e.ElapsedMS,
			FinishedAt: e.Timestamp(),
		})
		ctx.SetStatusMessage(fmt.Sprintf("run complete, confidence %s", view.FormatConfidence(e.Confidence)))

	case event.RunCanceledEvent:
		summary := view.RunSummary{
			RunID:      e.RunID,
			Outcome:    view.OutcomeCanceled,
			FinishedAt: e.Timestamp(),
		}
		if seq := ctx.Sequencer(); seq != nil && seq.State() != nil {
			s := seq.State()
			summary.Scenario = s.Scenario
			summary.Confidence = s.OverallConfidence()
			summary.ElapsedMS = s.TotalElapsedMS()
		}
		ctx.AppendHistory(summary)
		ctx.SetStatusMessage("run canceled")
	}
}

// HandleStartRun begins a demo run at the given time. Returns false when a
// run is already active; re-invoking the demo never interleaves two runs.
func HandleStartRun(ctx Context, scn pipeline.Scenario, now time.Time) bool {
	seq := ctx.Sequencer()
	if seq == nil {
		return false
	}
	if !seq.Start(scn, now) {
		ctx.SetStatusMessage("run already in progress")
		return false
	}
	ctx.ClearStatusMessage()
	return true
}

// HandleCancelRun cancels the active run and folds the cancel into the
// history list. Returns false when no run is active.
func HandleCancelRun(ctx Context, reason string, now time.Time) bool {
	seq := ctx.Sequencer()
	if seq == nil || !seq.Active() {
		return false
	}

	runID := ""
	if s := seq.State(); s != nil {
		runID = s.RunID
	}
	if !seq.Cancel(reason, now) {
		return false
	}

	ApplyEvent(ctx, event.NewRunCanceledEvent(runID, reason, now))
	return true
}

// HandleError processes an ErrMsg, surfacing it in the status bar.
func HandleError(ctx Context, m msg.ErrMsg) {
	ctx.SetStatusMessage(m.Err.Error())
	if logger := ctx.Logger(); logger != nil {
		logger.Error("dashboard error", "error", m.Err.Error())
	}
}

// HandleStatusExpired clears the transient status bar message.
func HandleStatusExpired(ctx Context, _ msg.StatusExpiredMsg) {
	ctx.ClearStatusMessage()
}

// HandleSnapshotLoaded processes the result of an explicit snapshot load.
func HandleSnapshotLoaded(ctx Context, m msg.SnapshotLoadedMsg) {
	if m.Err != nil {
		ctx.SetStatusMessage(fmt.Sprintf("snapshot load failed: %v", m.Err))
		if logger := ctx.Logger(); logger != nil {
			logger.Error("snapshot load failed", "path", m.Path, "error", m.Err.Error())
		}
		return
	}
	applySnapshot(ctx, m.State, m.Path)
}

// HandleSnapshotChanged processes a watcher reload of the snapshot file.
func HandleSnapshotChanged(ctx Context, m msg.SnapshotChangedMsg) {
	if m.Err != nil {
		ctx.SetStatusMessage(fmt.Sprintf("snapshot reload failed: %v", m.Err))
		if logger := ctx.Logger(); logger != nil {
			logger.Error("snapshot reload failed", "error", m.Err.Error())
		}
		return
	}
	applySnapshot(ctx, m.State, "")
}

// applySnapshot swaps the loaded snapshot in unless a demo run is active.
// Snapshots never preempt a running script; the reload is dropped with a
// warning instead.
func applySnapshot(ctx Context, s *pipeline.State, path string) {
	if s == nil {
		return
	}

	if seq := ctx.Sequencer(); seq != nil && seq.Active() {
		ctx.SetStatusMessage("snapshot ignored while a run is active")
		if logger := ctx.Logger(); logger != nil {
			logger.Warn("snapshot ignored during active run", "path", path)
		}
		return
	}

	ctx.ReplaceState(s)
	ctx.SetStatusMessage("snapshot loaded")
	if logger := ctx.Logger(); logger != nil {
		logger.Info("snapshot applied",
			"path", path,
			"phase", string(s.Phase),
			"records", len(s.Records))
	}
}
