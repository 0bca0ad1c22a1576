package pipeline

import (
	"strings"
	"testing"
)

func TestGeneratorDeterministicUnderSeed(t *testing.T) {
	a := NewGenerator(42)
	b := NewGenerator(42)

	for i := 0; i < 10; i++ {
		sa := a.Scenario()
		sb := b.Scenario()
		if sa.Label != sb.Label {
			t.Fatalf("scenario %d: label %q != %q under same seed", i, sa.Label, sb.Label)
		}
		if sa.Primary.Confidence != sb.Primary.Confidence {
			t.Fatalf("scenario %d: primary confidence %v != %v under same seed",
				i, sa.Primary.Confidence, sb.Primary.Confidence)
		}
		if sa.PrimaryMS != sb.PrimaryMS {
			t.Fatalf("scenario %d: primary latency %d != %d under same seed",
				i, sa.PrimaryMS, sb.PrimaryMS)
		}
	}
}

func TestGeneratorScenarioShape(t *testing.T) {
	gen := NewGenerator(7)

	for i := 0; i < 25; i++ {
		scn := gen.Scenario()

		if scn.Label == "" {
			t.Fatal("scenario has empty label")
		}
		if !strings.HasPrefix(scn.Contact, "CASE-") || len(scn.Contact) != len("CASE-")+8 {
			t.Errorf("Contact = %q, want CASE- prefix with 8 characters", scn.Contact)
		}
		if scn.Channel == "" {
			t.Error("scenario has empty channel")
		}

		for _, role := range Roles() {
			d := scn.Decision(role)
			if d.Confidence < 0 || d.Confidence > 1 {
				t.Errorf("%s confidence = %v, want value in [0,1]", role, d.Confidence)
			}
			if d.Summary == "" {
				t.Errorf("%s decision has empty summary", role)
			}
			if len(d.Reasoning) == 0 {
				t.Errorf("%s decision has no reasoning", role)
			}
			if !d.Risk.Valid() {
				t.Errorf("%s risk = %q, want a known tier", role, d.Risk)
			}
			if d.Intent != scn.Primary.Intent {
				t.Errorf("%s intent = %q, want %q shared across the run", role, d.Intent, scn.Primary.Intent)
			}
			if scn.LatencyMS(role) <= 0 {
				t.Errorf("%s latency = %d, want positive", role, scn.LatencyMS(role))
			}
		}
	}
}

func TestGeneratorSupervisorAdjustsPrimary(t *testing.T) {
	gen := NewGenerator(99)

	for i := 0; i < 25; i++ {
		scn := gen.Scenario()
		if scn.Supervisor.Confidence == scn.Primary.Confidence {
			continue
		}
		diff := scn.Supervisor.Confidence - scn.Primary.Confidence
		if diff > 0.1 || diff < -0.1 {
			t.Errorf("supervisor confidence %v drifts too far from primary %v",
				scn.Supervisor.Confidence, scn.Primary.Confidence)
		}
	}
}

func TestGeneratorLatencyRanges(t *testing.T) {
	gen := NewGenerator(3)

	for i := 0; i < 50; i++ {
		scn := gen.Scenario()
		if scn.PrimaryMS < 800 || scn.PrimaryMS >= 1600 {
			t.Errorf("PrimaryMS = %d, want [800,1600)", scn.PrimaryMS)
		}
		if scn.SupervisorMS < 1000 || scn.SupervisorMS >= 2200 {
			t.Errorf("SupervisorMS = %d, want [1000,2200)", scn.SupervisorMS)
		}
		if scn.EscalationMS < 600 || scn.EscalationMS >= 1800 {
			t.Errorf("EscalationMS = %d, want [600,1800)", scn.EscalationMS)
		}
	}
}

func TestScenarioRoleAccessors(t *testing.T) {
	scn := testScenario()

	tests := []struct {
		role     Role
		wantType string
		wantMS   int64
	}{
		{RolePrimary, "auto_response", 1200},
		{RoleSupervisor, "approve", 1500},
		{RoleEscalation, "resolve", 900},
	}

	for _, tt := range tests {
		if got := scn.Decision(tt.role).Type; got != tt.wantType {
			t.Errorf("Decision(%s).Type = %q, want %q", tt.role, got, tt.wantType)
		}
		if got := scn.LatencyMS(tt.role); got != tt.wantMS {
			t.Errorf("LatencyMS(%s) = %d, want %d", tt.role, got, tt.wantMS)
		}
	}
}
