package pipeline

import (
	"time"

	"github.com/opsline/switchboard/internal/event"
)

// Step is one entry in a run script: a transition applied to the state once
// the step's offset from run start has elapsed.
type Step struct {
	// Name identifies the step in logs and events, e.g. "primary.completed".
	Name string
	// Offset is the delay from run start after which the step fires.
	Offset time.Duration
	// Apply mutates the state and returns the events describing what
	// changed. The at argument is the time the step was applied.
	Apply func(s *State, at time.Time) []event.Event
}

// Script step offsets. The delays are illustrative pacing for the demo;
// only their order is guaranteed.
const (
	offsetPrimaryProcessing    = 400 * time.Millisecond
	offsetPrimaryCompleted     = 1600 * time.Millisecond
	offsetSupervisorProcessing = 2000 * time.Millisecond
	offsetSupervisorCompleted  = 3400 * time.Millisecond
	offsetEscalationProcessing = 3800 * time.Millisecond
	offsetFinalize             = 5400 * time.Millisecond
)

// BuildScript assembles the scripted demo run for one scenario as a
// transition table. The sequence mirrors a live pipeline: each agent shows
// a processing placeholder, then its completed decision record replaces the
// placeholder as the phase advances, and the final step completes all three
// records together with the move to the complete phase.
func BuildScript(scn Scenario) []Step {
	return []Step{
		{
			Name:   "primary.processing",
			Offset: offsetPrimaryProcessing,
			Apply:  processingStep(RolePrimary),
		},
		{
			Name:   "primary.completed",
			Offset: offsetPrimaryCompleted,
			Apply:  completionStep(scn, RolePrimary, PhaseSupervisor),
		},
		{
			Name:   "supervisor.processing",
			Offset: offsetSupervisorProcessing,
			Apply:  processingStep(RoleSupervisor),
		},
		{
			Name:   "supervisor.completed",
			Offset: offsetSupervisorCompleted,
			Apply:  completionStep(scn, RoleSupervisor, PhaseEscalation),
		},
		{
			Name:   "escalation.processing",
			Offset: offsetEscalationProcessing,
			Apply:  processingStep(RoleEscalation),
		},
		{
			Name:   "finalize",
			Offset: offsetFinalize,
			Apply:  finalizeStep(scn),
		},
	}
}

// processingStep shows a processing placeholder for the role.
func processingStep(role Role) func(*State, time.Time) []event.Event {
	return func(s *State, at time.Time) []event.Event {
		started := at
		s.Upsert(Record{
			Role:      role,
			Status:    StatusProcessing,
			StartedAt: &started,
		})
		return []event.Event{
			event.NewRecordUpdatedEvent(s.RunID, string(role), string(StatusProcessing), at),
		}
	}
}

// completionStep replaces the role's placeholder with its completed record
// and advances the phase to the next agent.
func completionStep(scn Scenario, role Role, next Phase) func(*State, time.Time) []event.Event {
	return func(s *State, at time.Time) []event.Event {
		events := []event.Event{completeRecord(s, scn, role, at)}
		events = append(events, advancePhase(s, next, at))
		return events
	}
}

// finalizeStep completes any record still outstanding and moves the
// pipeline to the complete phase. Completing records already completed is
// a no-op upsert, so the step is safe regardless of which earlier steps
// have applied.
func finalizeStep(scn Scenario) func(*State, time.Time) []event.Event {
	return func(s *State, at time.Time) []event.Event {
		var events []event.Event
		for _, role := range Roles() {
			if rec, ok := s.RecordFor(role); ok && rec.Completed() {
				continue
			}
			events = append(events, completeRecord(s, scn, role, at))
		}
		events = append(events, advancePhase(s, PhaseComplete, at))

		completed := at
		s.CompletedAt = &completed
		events = append(events, event.NewRunCompletedEvent(
			s.RunID, s.Scenario, s.OverallConfidence(), s.TotalElapsedMS(), at))
		return events
	}
}

// completeRecord upserts the role's completed record, preserving the
// placeholder's start time when one exists.
func completeRecord(s *State, scn Scenario, role Role, at time.Time) event.Event {
	decision := scn.Decision(role)
	completed := at

	rec := Record{
		Role:        role,
		Status:      StatusCompleted,
		ElapsedMS:   scn.LatencyMS(role),
		Decision:    &decision,
		CompletedAt: &completed,
	}
	if prev, ok := s.RecordFor(role); ok {
		rec.StartedAt = prev.StartedAt
	}
	s.Upsert(rec)

	return event.NewRecordUpdatedEvent(s.RunID, string(role), string(StatusCompleted), at)
}

// advancePhase moves the state to the given phase and reports the change.
func advancePhase(s *State, next Phase, at time.Time) event.Event {
	from := s.Phase
	s.SetPhase(next)
	return event.NewPhaseChangedEvent(s.RunID, string(from), string(next), at)
}
