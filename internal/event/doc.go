// Package event provides a pub-sub event bus for decoupled inter-component
// communication in Switchboard.
//
// This package enables loose coupling between the pipeline sequencer, the
// TUI, and observers such as the structured logger and the run-history
// recorder. Components can publish events without knowing who will receive
// them, and subscribe to events without knowing who will produce them.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub event dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Event Categories
//
// Run Lifecycle:
//   - [RunStartedEvent]: Emitted when a scripted pipeline run begins
//   - [RunCompletedEvent]: Emitted when a run reaches the complete phase
//   - [RunCanceledEvent]: Emitted when a run is canceled before completing
//
// Pipeline Progress:
//   - [PhaseChangedEvent]: Emitted when the pipeline phase advances
//   - [RecordUpdatedEvent]: Emitted when an agent's decision record changes
//
// Snapshot Events:
//   - [SnapshotAppliedEvent]: Emitted when an external snapshot replaces the state
//
// # Thread Safety
//
// The [Bus] type is safe for concurrent use. Handlers are called
// synchronously and protected against panics - a panicking handler will not
// prevent other handlers from being called.
//
// # Basic Usage
//
//	bus := event.NewBus()
//
//	// Subscribe to specific event types
//	bus.Subscribe(event.TypePhaseChanged, func(e event.Event) {
//	    changed := e.(event.PhaseChangedEvent)
//	    log.Printf("phase %s -> %s", changed.From, changed.To)
//	})
//
//	// Subscribe to all events (useful for logging)
//	bus.SubscribeAll(func(e event.Event) {
//	    log.Printf("event: %s at %v", e.EventType(), e.Timestamp())
//	})
//
//	bus.Publish(event.NewRunStartedEvent(runID, scenario, now))
//
// # Event Type Naming Convention
//
// Event types follow the pattern "category.action":
//   - run.started, run.completed, run.canceled
//   - phase.changed
//   - record.updated
//   - snapshot.applied
package event
