package event

import "time"

// Event type identifiers published on the bus.
const (
	TypeRunStarted      = "run.started"
	TypeRunCompleted    = "run.completed"
	TypeRunCanceled     = "run.canceled"
	TypePhaseChanged    = "phase.changed"
	TypeRecordUpdated   = "record.updated"
	TypeSnapshotApplied = "snapshot.applied"
)

// Event is the interface that all events must implement.
// It provides a common way to identify and timestamp events.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "run.started", "phase.changed")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent stamped with the given time. Events carry
// the sequencer's notion of time, not the wall clock, so that scripted runs
// stay deterministic under a synthetic clock.
func newBaseEvent(eventType string, at time.Time) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: at,
	}
}

// RunStartedEvent is emitted when a scripted pipeline run begins.
type RunStartedEvent struct {
	baseEvent
	RunID    string // Unique identifier for the run
	Scenario string // Display label for the simulated contact
}

// NewRunStartedEvent creates a RunStartedEvent.
func NewRunStartedEvent(runID, scenario string, at time.Time) RunStartedEvent {
	return RunStartedEvent{
		baseEvent: newBaseEvent(TypeRunStarted, at),
		RunID:     runID,
		Scenario:  scenario,
	}
}

// RunCompletedEvent is emitted when a run reaches the complete phase.
type RunCompletedEvent struct {
	baseEvent
	RunID      string  // Unique identifier for the run
	Scenario   string  // Display label for the simulated contact
	Confidence float64 // Overall confidence at completion
	ElapsedMS  int64   // Sum of per-agent timings
}

// NewRunCompletedEvent creates a RunCompletedEvent.
func NewRunCompletedEvent(runID, scenario string, confidence float64, elapsedMS int64, at time.Time) RunCompletedEvent {
	return RunCompletedEvent{
		baseEvent:  newBaseEvent(TypeRunCompleted, at),
		RunID:      runID,
		Scenario:   scenario,
		Confidence: confidence,
		ElapsedMS:  elapsedMS,
	}
}

// RunCanceledEvent is emitted when an active run is canceled before its
// script finishes.
type RunCanceledEvent struct {
	baseEvent
	RunID  string // Unique identifier for the run
	Reason string // Why the run was canceled (e.g., "user", "teardown", "snapshot")
}

// NewRunCanceledEvent creates a RunCanceledEvent.
func NewRunCanceledEvent(runID, reason string, at time.Time) RunCanceledEvent {
	return RunCanceledEvent{
		baseEvent: newBaseEvent(TypeRunCanceled, at),
		RunID:     runID,
		Reason:    reason,
	}
}

// PhaseChangedEvent is emitted when the pipeline phase advances.
type PhaseChangedEvent struct {
	baseEvent
	RunID string // Run the change belongs to ("" for snapshot state)
	From  string // Previous phase
	To    string // New phase
}

// NewPhaseChangedEvent creates a PhaseChangedEvent.
func NewPhaseChangedEvent(runID, from, to string, at time.Time) PhaseChangedEvent {
	return PhaseChangedEvent{
		baseEvent: newBaseEvent(TypePhaseChanged, at),
		RunID:     runID,
		From:      from,
		To:        to,
	}
}

// RecordUpdatedEvent is emitted when an agent's decision record is created
// or replaced.
type RecordUpdatedEvent struct {
	baseEvent
	RunID  string // Run the record belongs to
	Role   string // Agent role (primary, supervisor, escalation)
	Status string // New lifecycle status (pending, processing, completed)
}

// NewRecordUpdatedEvent creates a RecordUpdatedEvent.
func NewRecordUpdatedEvent(runID, role, status string, at time.Time) RecordUpdatedEvent {
	return RecordUpdatedEvent{
		baseEvent: newBaseEvent(TypeRecordUpdated, at),
		RunID:     runID,
		Role:      role,
		Status:    status,
	}
}

// SnapshotAppliedEvent is emitted when an externally supplied snapshot
// replaces the dashboard state.
type SnapshotAppliedEvent struct {
	baseEvent
	Path     string // Snapshot file path
	Scenario string // Scenario label carried by the snapshot
	Phase    string // Phase carried by the snapshot
}

// NewSnapshotAppliedEvent creates a SnapshotAppliedEvent.
func NewSnapshotAppliedEvent(path, scenario, phase string, at time.Time) SnapshotAppliedEvent {
	return SnapshotAppliedEvent{
		baseEvent: newBaseEvent(TypeSnapshotApplied, at),
		Path:      path,
		Scenario:  scenario,
		Phase:     phase,
	}
}
