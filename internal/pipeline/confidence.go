package pipeline

// Confidence tier thresholds. Scores are clamped into [0,1] before
// bucketing, so every float maps to a tier.
const (
	highConfidenceFloor   = 0.85
	mediumConfidenceFloor = 0.60
	lowConfidenceFloor    = 0.35
)

// ClampScore forces a confidence score into [0,1].
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// TierForScore buckets a numeric confidence score into a coarse tier.
// Total over all float inputs: out-of-range scores clamp first.
func TierForScore(score float64) ConfidenceTier {
	score = ClampScore(score)
	switch {
	case score >= highConfidenceFloor:
		return ConfidenceHigh
	case score >= mediumConfidenceFloor:
		return ConfidenceMedium
	case score >= lowConfidenceFloor:
		return ConfidenceLow
	default:
		return ConfidenceUncertain
	}
}

// OverallConfidence derives the run-level confidence from the records
// collected so far. The escalation agent sees the most context, so its
// confidence wins when present; otherwise the supervisor's reviewed
// (adjusted) confidence applies, then the primary agent's raw score.
// With no completed decision anywhere the overall confidence is 0.
//
// Only completed records with a decision payload participate.
func (s *State) OverallConfidence() float64 {
	for _, role := range []Role{RoleEscalation, RoleSupervisor, RolePrimary} {
		if rec, ok := s.RecordFor(role); ok {
			if score, ok := rec.Confidence(); ok {
				return score
			}
		}
	}
	return 0
}

// OverallTier returns the confidence tier for the derived overall
// confidence. An idle state with no decisions reports uncertain.
func (s *State) OverallTier() ConfidenceTier {
	return TierForScore(s.OverallConfidence())
}
