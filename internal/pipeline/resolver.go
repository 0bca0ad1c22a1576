package pipeline

// ResolveStatus derives the display status for an agent from its record and
// the pipeline's current phase. Pure function, no side effects.
//
// Resolution order:
//  1. a record with status completed wins regardless of phase
//  2. a record with status processing reports processing
//  3. with no record, the role matching the current phase reports
//     processing
//  4. with no record, a role earlier in the pipeline order than the
//     current phase reports completed
//  5. everything else reports pending
//
// Rule 4 means an agent with no backing record at all still displays as
// completed once the pipeline has moved past it. Phase position only fills
// in for absent records: a record explicitly carrying status pending
// reports pending even when its role matches or precedes the current phase.
func ResolveStatus(role Role, phase Phase, rec *Record) Status {
	if rec != nil {
		switch rec.Status {
		case StatusCompleted:
			return StatusCompleted
		case StatusProcessing:
			return StatusProcessing
		default:
			return StatusPending
		}
	}

	if PhaseForRole(role) == phase {
		return StatusProcessing
	}
	if idx := PhaseForRole(role).Index(); idx >= 0 && idx < phase.Index() {
		return StatusCompleted
	}
	return StatusPending
}

// ResolveAll returns the display status of every role for the given state,
// keyed by role.
func ResolveAll(s *State) map[Role]Status {
	statuses := make(map[Role]Status, len(Roles()))
	for _, role := range Roles() {
		var rec *Record
		if r, ok := s.RecordFor(role); ok {
			rec = &r
		}
		statuses[role] = ResolveStatus(role, s.Phase, rec)
	}
	return statuses
}
