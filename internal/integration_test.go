// Package internal contains integration tests that verify the refactored
// packages work together correctly. These tests exercise the sequencer,
// event bus, resolver, and snapshot codec as one pipeline.
package internal

import (
	"sync"
	"testing"
	"time"

	"github.com/opsline/switchboard/internal/event"
	"github.com/opsline/switchboard/internal/pipeline"
)

func integrationScenario() pipeline.Scenario {
	return pipeline.Scenario{
		Label:   "Refund request",
		Contact: "CASE-INTEG01",
		Channel: "voice",
		Primary: pipeline.Decision{
			Type:       "auto_response",
			Intent:     "refund_request",
			Summary:    "Issued a refund",
			Confidence: 0.74,
			Risk:       pipeline.RiskLow,
		},
		Supervisor: pipeline.Decision{
			Type:       "approve",
			Confidence: 0.81,
		},
		Escalation: pipeline.Decision{
			Type:       "resolve",
			Confidence: 0.88,
			Risk:       pipeline.RiskNone,
		},
		PrimaryMS:    900,
		SupervisorMS: 1100,
		EscalationMS: 700,
	}
}

// TestEventBusIntegration drives a full scripted run and verifies the bus
// routes every transition to its subscribers, simulating the dashboard's
// logging sink.
func TestEventBusIntegration(t *testing.T) {
	bus := event.NewBus()

	var mu sync.Mutex
	counts := make(map[string]int)
	var order []string

	for _, eventType := range []string{
		event.TypeRunStarted,
		event.TypeRunCompleted,
		event.TypePhaseChanged,
		event.TypeRecordUpdated,
	} {
		bus.Subscribe(eventType, func(e event.Event) {
			mu.Lock()
			counts[e.EventType()]++
			order = append(order, e.EventType())
			mu.Unlock()
		})
	}

	state := pipeline.NewState()
	seq := pipeline.NewSequencer(state, pipeline.WithBus(bus))

	start := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	if !seq.Start(integrationScenario(), start) {
		t.Fatal("run should start")
	}
	seq.Advance(start.Add(10 * time.Second))

	if seq.Active() {
		t.Fatal("run should finish after the script elapses")
	}

	mu.Lock()
	defer mu.Unlock()

	if counts[event.TypeRunStarted] != 1 {
		t.Errorf("run.started events = %d, want 1", counts[event.TypeRunStarted])
	}
	if counts[event.TypeRunCompleted] != 1 {
		t.Errorf("run.completed events = %d, want 1", counts[event.TypeRunCompleted])
	}
	// idle->primary, primary->supervisor, supervisor->escalation,
	// escalation->complete
	if counts[event.TypePhaseChanged] != 4 {
		t.Errorf("phase.changed events = %d, want 4", counts[event.TypePhaseChanged])
	}
	// Each of the three roles goes processing then completed
	if counts[event.TypeRecordUpdated] != 6 {
		t.Errorf("record.updated events = %d, want 6", counts[event.TypeRecordUpdated])
	}

	if len(order) == 0 {
		t.Fatal("no events received")
	}
	if order[0] != event.TypeRunStarted {
		t.Errorf("first event = %q, want run.started", order[0])
	}
	if order[len(order)-1] != event.TypeRunCompleted {
		t.Errorf("last event = %q, want run.completed", order[len(order)-1])
	}
}

// TestSequencerResolverIntegration verifies the resolver derives display
// statuses consistent with the sequencer's phase at every step of a run.
func TestSequencerResolverIntegration(t *testing.T) {
	state := pipeline.NewState()
	seq := pipeline.NewSequencer(state)

	start := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	if !seq.Start(integrationScenario(), start) {
		t.Fatal("run should start")
	}

	// Walk the run in 100ms increments; resolved statuses must never
	// regress from completed back to an earlier status.
	rank := map[pipeline.Status]int{
		pipeline.StatusPending:    0,
		pipeline.StatusProcessing: 1,
		pipeline.StatusCompleted:  2,
	}
	last := map[pipeline.Role]int{}

	for elapsed := time.Duration(0); elapsed <= 10*time.Second; elapsed += 100 * time.Millisecond {
		seq.Advance(start.Add(elapsed))
		for role, status := range pipeline.ResolveAll(state) {
			if rank[status] < last[role] {
				t.Fatalf("status for %s regressed at %v", role, elapsed)
			}
			last[role] = rank[status]
		}
	}

	for _, role := range pipeline.Roles() {
		if last[role] != rank[pipeline.StatusCompleted] {
			t.Errorf("role %s did not finish completed", role)
		}
	}
}

// TestCancelIntegration verifies cancellation publishes on the bus and
// freezes the run mid-script.
func TestCancelIntegration(t *testing.T) {
	bus := event.NewBus()

	var mu sync.Mutex
	var canceled []event.Event
	bus.Subscribe(event.TypeRunCanceled, func(e event.Event) {
		mu.Lock()
		canceled = append(canceled, e)
		mu.Unlock()
	})

	state := pipeline.NewState()
	seq := pipeline.NewSequencer(state, pipeline.WithBus(bus))

	start := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	seq.Start(integrationScenario(), start)
	seq.Advance(start.Add(2 * time.Second))
	phaseAtCancel := state.Phase

	if !seq.Cancel("integration test", start.Add(2500*time.Millisecond)) {
		t.Fatal("cancel should succeed mid-run")
	}

	// Later ticks must not apply stale steps.
	seq.Advance(start.Add(10 * time.Second))
	if state.Phase != phaseAtCancel {
		t.Errorf("phase advanced after cancel: %v -> %v", phaseAtCancel, state.Phase)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(canceled) != 1 {
		t.Fatalf("run.canceled events = %d, want 1", len(canceled))
	}
	ev, ok := canceled[0].(event.RunCanceledEvent)
	if !ok {
		t.Fatalf("event type = %T, want RunCanceledEvent", canceled[0])
	}
	if ev.Reason != "integration test" {
		t.Errorf("reason = %q, want the cancel reason", ev.Reason)
	}
}

// TestSnapshotResolverIntegration verifies a parsed snapshot flows through
// the resolver and confidence rollup the same way sequencer output does.
func TestSnapshotResolverIntegration(t *testing.T) {
	doc := []byte(`scenario: Midway review
phase: escalation
records:
  - role: primary
    status: completed
    elapsed_ms: 800
    decision:
      type: auto_response
      confidence: 0.64
      risk: medium
  - role: escalation
    status: processing
`)

	state, err := pipeline.ParseSnapshot(doc)
	if err != nil {
		t.Fatalf("ParseSnapshot failed: %v", err)
	}

	statuses := pipeline.ResolveAll(state)
	if statuses[pipeline.RolePrimary] != pipeline.StatusCompleted {
		t.Errorf("primary = %v, want completed", statuses[pipeline.RolePrimary])
	}
	// No supervisor record, but the phase has moved past it.
	if statuses[pipeline.RoleSupervisor] != pipeline.StatusCompleted {
		t.Errorf("supervisor = %v, want completed via fill-forward", statuses[pipeline.RoleSupervisor])
	}
	if statuses[pipeline.RoleEscalation] != pipeline.StatusProcessing {
		t.Errorf("escalation = %v, want processing", statuses[pipeline.RoleEscalation])
	}

	if got := state.OverallConfidence(); got != 0.64 {
		t.Errorf("overall confidence = %v, want the only completed decision's score", got)
	}
	if tier := state.OverallTier(); tier != pipeline.ConfidenceMedium {
		t.Errorf("overall tier = %v, want medium", tier)
	}
}
