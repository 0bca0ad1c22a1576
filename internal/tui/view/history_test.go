package view

import (
	"strings"
	"testing"
	"time"
)

func TestHistoryView_Empty(t *testing.T) {
	hv := NewHistoryView()
	state := &mockDashboardState{width: 100, height: 30}

	result := hv.Render(state, 100, 30)

	if !strings.Contains(result, "No finished runs yet") {
		t.Error("empty history should show the placeholder")
	}
	if !strings.Contains(result, "[r]") {
		t.Error("empty history should show the run hint")
	}
}

func TestHistoryView_Rows(t *testing.T) {
	now := time.Now()
	hv := NewHistoryView()
	state := &mockDashboardState{
		history: []RunSummary{
			{
				RunID:      "0a1b2c3d-ffff-4000-8000-000000000000",
				Scenario:   "Billing dispute",
				Outcome:    OutcomeComplete,
				Confidence: 0.83,
				ElapsedMS:  5400,
				FinishedAt: now.Add(-2 * time.Minute),
			},
			{
				RunID:      "ffffffff-0000-4000-8000-000000000000",
				Scenario:   "Refund request",
				Outcome:    OutcomeCanceled,
				Confidence: 0,
				ElapsedMS:  1600,
				FinishedAt: now.Add(-10 * time.Minute),
			},
		},
		width:  110,
		height: 30,
	}

	result := hv.Render(state, 110, 30)

	if !strings.Contains(result, "SCENARIO") {
		t.Error("history should render the column header")
	}
	if !strings.Contains(result, "0a1b2c3d") {
		t.Error("history should show the short run ID")
	}
	if !strings.Contains(result, "Billing dispute") {
		t.Error("history should show the scenario")
	}
	if !strings.Contains(result, "complete") {
		t.Error("history should show the complete outcome")
	}
	if !strings.Contains(result, "canceled") {
		t.Error("history should show the canceled outcome")
	}
	if !strings.Contains(result, "83%") {
		t.Error("history should show the run confidence")
	}
	if !strings.Contains(result, "5.4s") {
		t.Error("history should show the elapsed time")
	}
	if !strings.Contains(result, "2m ago") {
		t.Error("history should show when the run finished")
	}
}

func TestHistoryView_CapsRows(t *testing.T) {
	history := make([]RunSummary, 12)
	for i := range history {
		history[i] = RunSummary{
			RunID:      "run",
			Scenario:   "Scenario",
			Outcome:    OutcomeComplete,
			FinishedAt: time.Now(),
		}
	}

	hv := NewHistoryView()
	state := &mockDashboardState{history: history, width: 110, height: 10}

	result := hv.Render(state, 110, 10)

	// height 10 leaves room for 6 rows; the rest collapse into a count
	if !strings.Contains(result, "… 6 more") {
		t.Errorf("history should collapse overflow rows, got:\n%s", result)
	}
}
