package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/opsline/switchboard/internal/event"
	"github.com/opsline/switchboard/internal/logging"
)

// Sequencer replays a scripted pipeline run against a State. It is driven
// entirely by the caller's tick feed: it owns no timers and never reads the
// wall clock, so the same script is deterministic under a synthetic clock.
//
// A run is started with Start, advanced by calling Advance with the current
// time on every tick, and stopped early with Cancel. While a run is active
// Start is a no-op, which prevents two runs from interleaving records.
//
// Sequencer is not safe for concurrent use; the dashboard drives it from
// the single update goroutine.
type Sequencer struct {
	state    *State
	bus      *event.Bus
	logger   *logging.Logger
	speed    float64
	newRunID func() string

	steps     []Step
	next      int
	startedAt time.Time
	active    bool
}

// SequencerOption configures a Sequencer.
type SequencerOption func(*Sequencer)

// WithBus sets the event bus that run transitions are published on.
func WithBus(bus *event.Bus) SequencerOption {
	return func(s *Sequencer) {
		s.bus = bus
	}
}

// WithLogger sets the structured logger for run transitions.
func WithLogger(logger *logging.Logger) SequencerOption {
	return func(s *Sequencer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSpeed sets the playback rate for script delays. 2.0 plays a run
// twice as fast as written; values <= 0 fall back to 1.0.
func WithSpeed(speed float64) SequencerOption {
	return func(s *Sequencer) {
		if speed > 0 {
			s.speed = speed
		}
	}
}

// withRunIDFunc overrides run ID generation. Test hook.
func withRunIDFunc(fn func() string) SequencerOption {
	return func(s *Sequencer) {
		s.newRunID = fn
	}
}

// NewSequencer creates a Sequencer that mutates the given state.
func NewSequencer(state *State, opts ...SequencerOption) *Sequencer {
	if state == nil {
		state = NewState()
	}
	s := &Sequencer{
		state:    state,
		logger:   logging.NopLogger(),
		speed:    1.0,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the state the sequencer mutates.
func (s *Sequencer) State() *State {
	return s.state
}

// Active reports whether a run is in progress.
func (s *Sequencer) Active() bool {
	return s.active
}

// Progress returns the number of script steps applied and the script
// length for the current or last run.
func (s *Sequencer) Progress() (applied, total int) {
	return s.next, len(s.steps)
}

// Start begins a scripted run at the given time: it clears all records,
// moves the phase to primary, and schedules the script steps relative to
// now. It returns false without touching the state when a run is already
// active.
func (s *Sequencer) Start(scn Scenario, now time.Time) bool {
	if s.active {
		s.logger.Warn("run start ignored, another run is active",
			"run_id", s.state.RunID)
		return false
	}

	runID := s.newRunID()
	s.state.Reset(runID, scn.Label, now)
	s.state.Contact = scn.Contact
	s.state.Channel = scn.Channel

	s.steps = scaleScript(BuildScript(scn), s.speed)
	s.next = 0
	s.startedAt = now
	s.active = true

	events := []event.Event{
		event.NewRunStartedEvent(runID, scn.Label, now),
		advancePhase(s.state, PhasePrimary, now),
	}
	s.emit(events)

	s.logger.Info("run started",
		"run_id", runID,
		"scenario", scn.Label,
		"contact", scn.Contact,
		"steps", len(s.steps))
	return true
}

// Advance applies every script step whose deadline has passed, in script
// order, and returns the events describing what changed. Steps fire once:
// a large jump in now applies all expired steps in a single call. When the
// last step applies the run deactivates.
func (s *Sequencer) Advance(now time.Time) []event.Event {
	if !s.active {
		return nil
	}

	var fired []event.Event
	for s.next < len(s.steps) {
		step := s.steps[s.next]
		if now.Before(s.startedAt.Add(step.Offset)) {
			break
		}

		fired = append(fired, step.Apply(s.state, now)...)
		s.next++

		s.logger.Debug("step applied",
			"run_id", s.state.RunID,
			"step", step.Name,
			"phase", string(s.state.Phase))
	}

	if s.next == len(s.steps) {
		s.active = false
		s.logger.Info("run completed",
			"run_id", s.state.RunID,
			"confidence", s.state.OverallConfidence(),
			"elapsed_ms", s.state.TotalElapsedMS())
	}

	s.emit(fired)
	return fired
}

// Cancel stops an active run so no further steps apply. The state keeps
// whatever records have landed; the phase stays where it was. Returns
// false when no run is active.
func (s *Sequencer) Cancel(reason string, now time.Time) bool {
	if !s.active {
		return false
	}

	s.active = false
	s.emit([]event.Event{
		event.NewRunCanceledEvent(s.state.RunID, reason, now),
	})
	s.logger.Info("run canceled",
		"run_id", s.state.RunID,
		"reason", reason,
		"steps_applied", s.next)
	return true
}

// emit publishes events on the bus when one is configured.
func (s *Sequencer) emit(events []event.Event) {
	if s.bus == nil {
		return
	}
	for _, ev := range events {
		s.bus.Publish(ev)
	}
}

// scaleScript divides step offsets by the playback rate.
func scaleScript(steps []Step, speed float64) []Step {
	if speed == 1.0 {
		return steps
	}
	scaled := make([]Step, len(steps))
	for i, step := range steps {
		step.Offset = time.Duration(float64(step.Offset) / speed)
		scaled[i] = step
	}
	return scaled
}
