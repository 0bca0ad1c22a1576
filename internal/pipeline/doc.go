// Package pipeline models the call-center decision pipeline shown by the
// dashboard: three agents (primary response, supervisor review, escalation)
// that each produce a decision record as a contact moves through the fixed
// phase order primary → supervisor → escalation → complete.
//
// # Data Model
//
// [State] holds the current [Phase] and the per-agent [Record] set collected
// during one run. Records are append-only within a run: an agent's record is
// replaced in place as its status advances, never removed or reordered.
// [Record] carries a lifecycle [Status], optional timing, and an optional
// [Decision] payload (type tag, classified intent, summary, confidence,
// risk, ordered reasoning).
//
// # Phase Resolution
//
// [ResolveStatus] derives the display status of any agent from its record
// and the current phase. It is a pure function with no side effects.
//
// # Scripted Runs
//
// [Sequencer] replays a fixed-delay script against a [State]: each [Step]
// fires at an offset from run start and applies one transition. The
// sequencer owns no timers and never reads the wall clock; callers feed it
// time through [Sequencer.Advance], which makes runs deterministic under a
// synthetic clock. A busy flag makes re-triggering a no-op while a run is
// active, and [Sequencer.Cancel] stops an active run so no stale step can
// apply after teardown. Transitions publish events on an [event.Bus] for
// dashboard reactivity.
//
// # Snapshots
//
// [LoadSnapshot] reads an externally supplied pipeline state from a YAML
// file, and [Watcher] reloads it when the file changes. When no snapshot is
// configured the dashboard self-seeds from [Generator] demo data.
//
// # Usage
//
//	state := pipeline.NewState()
//	seq := pipeline.NewSequencer(state,
//	    pipeline.WithBus(bus),
//	    pipeline.WithLogger(logger),
//	)
//	scn := pipeline.NewGenerator(0).Scenario()
//	seq.Start(scn, time.Now())
//	// on every tick:
//	events := seq.Advance(tickTime)
package pipeline
