package pipeline

import "time"

// Role identifies one agent stage of the decision pipeline.
type Role string

const (
	// RolePrimary is the first-line response agent that drafts an answer
	// for the customer contact.
	RolePrimary Role = "primary"
	// RoleSupervisor is the review agent that checks and adjusts the
	// primary agent's decision.
	RoleSupervisor Role = "supervisor"
	// RoleEscalation is the final agent that decides whether the contact
	// is resolved or handed to a human.
	RoleEscalation Role = "escalation"
)

// Roles returns the agent roles in fixed pipeline order.
func Roles() []Role {
	return []Role{RolePrimary, RoleSupervisor, RoleEscalation}
}

// Valid returns true if the role is a known value.
func (r Role) Valid() bool {
	switch r {
	case RolePrimary, RoleSupervisor, RoleEscalation:
		return true
	default:
		return false
	}
}

// Index returns the role's position in the fixed pipeline order,
// or -1 for unknown roles.
func (r Role) Index() int {
	switch r {
	case RolePrimary:
		return 0
	case RoleSupervisor:
		return 1
	case RoleEscalation:
		return 2
	default:
		return -1
	}
}

// Title returns a human-readable name for the role.
func (r Role) Title() string {
	switch r {
	case RolePrimary:
		return "Primary Response"
	case RoleSupervisor:
		return "Supervisor Review"
	case RoleEscalation:
		return "Escalation"
	default:
		return string(r)
	}
}

// Status is the lifecycle status of an agent's decision record.
type Status string

const (
	// StatusPending means the agent has not started on the contact yet.
	StatusPending Status = "pending"
	// StatusProcessing means the agent is working and a placeholder record
	// is displayed.
	StatusProcessing Status = "processing"
	// StatusCompleted means the agent produced its decision.
	StatusCompleted Status = "completed"
)

// Valid returns true if the status is a known value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted:
		return true
	default:
		return false
	}
}

// Phase is the pipeline's current stage of progress. It drives display
// state independent of per-agent record presence.
type Phase string

const (
	// PhaseIdle means no run is in progress and no contact is loaded.
	PhaseIdle Phase = "idle"
	// PhasePrimary means the primary response agent is working.
	PhasePrimary Phase = "primary"
	// PhaseSupervisor means the supervisor review agent is working.
	PhaseSupervisor Phase = "supervisor"
	// PhaseEscalation means the escalation agent is working.
	PhaseEscalation Phase = "escalation"
	// PhaseComplete means all three agents have decided.
	PhaseComplete Phase = "complete"
)

// Valid returns true if the phase is a known value.
func (p Phase) Valid() bool {
	switch p {
	case PhaseIdle, PhasePrimary, PhaseSupervisor, PhaseEscalation, PhaseComplete:
		return true
	default:
		return false
	}
}

// Index returns the phase's position in the fixed ordering
// idle → primary → supervisor → escalation → complete, or -1 for unknown
// phases.
func (p Phase) Index() int {
	switch p {
	case PhaseIdle:
		return 0
	case PhasePrimary:
		return 1
	case PhaseSupervisor:
		return 2
	case PhaseEscalation:
		return 3
	case PhaseComplete:
		return 4
	default:
		return -1
	}
}

// Title returns a human-readable name for the phase.
func (p Phase) Title() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePrimary:
		return "Primary Response"
	case PhaseSupervisor:
		return "Supervisor Review"
	case PhaseEscalation:
		return "Escalation"
	case PhaseComplete:
		return "Complete"
	default:
		return string(p)
	}
}

// PhaseForRole returns the phase during which the given role is the active
// agent.
func PhaseForRole(r Role) Phase {
	switch r {
	case RolePrimary:
		return PhasePrimary
	case RoleSupervisor:
		return PhaseSupervisor
	case RoleEscalation:
		return PhaseEscalation
	default:
		return PhaseIdle
	}
}

// ConfidenceTier is the coarse bucket derived from a numeric confidence
// score.
type ConfidenceTier string

const (
	ConfidenceHigh      ConfidenceTier = "high"
	ConfidenceMedium    ConfidenceTier = "medium"
	ConfidenceLow       ConfidenceTier = "low"
	ConfidenceUncertain ConfidenceTier = "uncertain"
)

// RiskTier is the risk assessment attached to a decision.
type RiskTier string

const (
	RiskNone     RiskTier = "none"
	RiskLow      RiskTier = "low"
	RiskMedium   RiskTier = "medium"
	RiskHigh     RiskTier = "high"
	RiskCritical RiskTier = "critical"
)

// Valid returns true if the risk tier is a known value.
func (r RiskTier) Valid() bool {
	switch r {
	case RiskNone, RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	default:
		return false
	}
}

// Label returns the display form of the risk tier. Missing risk displays
// as "None".
func (r RiskTier) Label() string {
	switch r {
	case "":
		return "None"
	case RiskNone:
		return "None"
	case RiskLow:
		return "Low"
	case RiskMedium:
		return "Medium"
	case RiskHigh:
		return "High"
	case RiskCritical:
		return "Critical"
	default:
		return string(r)
	}
}

// Decision is the payload an agent attaches to its completed record.
// Every field is optional for display purposes; missing values degrade to
// default display strings rather than failing.
type Decision struct {
	// Type is a freeform decision tag, e.g. "auto_response",
	// "approve_with_changes", "human_handoff".
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Intent is the classified customer intent. Empty displays "Unknown".
	Intent string `json:"intent,omitempty" yaml:"intent,omitempty"`
	// Summary is the human-readable decision summary.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`
	// Confidence is the agent's confidence score in [0,1].
	Confidence float64 `json:"confidence" yaml:"confidence"`
	// Risk is the decision's risk assessment. Empty displays "None".
	Risk RiskTier `json:"risk,omitempty" yaml:"risk,omitempty"`
	// Reasoning is the ordered list of reasoning steps behind the decision.
	Reasoning []string `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
}

// Tier returns the confidence tier derived from the decision's score.
func (d Decision) Tier() ConfidenceTier {
	return TierForScore(d.Confidence)
}

// IntentLabel returns the display form of the classified intent.
func (d Decision) IntentLabel() string {
	if d.Intent == "" {
		return "Unknown"
	}
	return d.Intent
}

// Record is one agent's entry in the pipeline state.
type Record struct {
	Role        Role       `json:"role" yaml:"role"`
	Status      Status     `json:"status" yaml:"status"`
	ElapsedMS   int64      `json:"elapsed_ms,omitempty" yaml:"elapsed_ms,omitempty"`
	Decision    *Decision  `json:"decision,omitempty" yaml:"decision,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
}

// Completed reports whether the record carries a completed decision.
func (r Record) Completed() bool {
	return r.Status == StatusCompleted
}

// Confidence returns the record's decision confidence. The second return
// is false when the record has no completed decision to read from.
func (r Record) Confidence() (float64, bool) {
	if !r.Completed() || r.Decision == nil {
		return 0, false
	}
	return r.Decision.Confidence, true
}

// State is the pipeline state displayed by the dashboard: the current phase
// plus the decision records collected so far in this run.
type State struct {
	RunID       string     `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Scenario    string     `json:"scenario,omitempty" yaml:"scenario,omitempty"`
	Contact     string     `json:"contact,omitempty" yaml:"contact,omitempty"`
	Channel     string     `json:"channel,omitempty" yaml:"channel,omitempty"`
	Phase       Phase      `json:"phase" yaml:"phase"`
	Records     []Record   `json:"records" yaml:"records"`
	StartedAt   *time.Time `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
}

// NewState returns an empty idle state.
func NewState() *State {
	return &State{Phase: PhaseIdle}
}

// Reset clears all records and prepares the state for a new run.
func (s *State) Reset(runID, scenario string, at time.Time) {
	started := at
	s.RunID = runID
	s.Scenario = scenario
	s.Contact = ""
	s.Channel = ""
	s.Phase = PhaseIdle
	s.Records = nil
	s.StartedAt = &started
	s.CompletedAt = nil
}

// SetPhase moves the pipeline to the given phase.
func (s *State) SetPhase(p Phase) {
	s.Phase = p
}

// Upsert inserts the record, or replaces the record already held for the
// same role. Records keep their append order; a replacement never reorders
// the slice.
func (s *State) Upsert(rec Record) {
	for i := range s.Records {
		if s.Records[i].Role == rec.Role {
			s.Records[i] = rec
			return
		}
	}
	s.Records = append(s.Records, rec)
}

// RecordFor returns the record held for the given role.
func (s *State) RecordFor(role Role) (Record, bool) {
	for _, rec := range s.Records {
		if rec.Role == role {
			return rec, true
		}
	}
	return Record{}, false
}

// CompletedCount returns the number of completed records.
func (s *State) CompletedCount() int {
	count := 0
	for _, rec := range s.Records {
		if rec.Completed() {
			count++
		}
	}
	return count
}

// TotalElapsedMS returns the sum of all record timings in milliseconds.
func (s *State) TotalElapsedMS() int64 {
	var total int64
	for _, rec := range s.Records {
		total += rec.ElapsedMS
	}
	return total
}
