package view

import (
	"strings"
	"testing"
	"time"

	"github.com/opsline/switchboard/internal/pipeline"
)

// mockDashboardState implements DashboardState for testing
type mockDashboardState struct {
	state        *pipeline.State
	runActive    bool
	activeTab    Tab
	selectedRole int
	expanded     map[pipeline.Role]bool
	history      []RunSummary
	snapshotPath string
	statusMsg    string
	spinner      string
	width        int
	height       int
}

func (m *mockDashboardState) Pipeline() *pipeline.State { return m.state }
func (m *mockDashboardState) RunActive() bool           { return m.runActive }
func (m *mockDashboardState) ActiveTab() Tab            { return m.activeTab }
func (m *mockDashboardState) SelectedRole() int         { return m.selectedRole }
func (m *mockDashboardState) ReasoningExpanded(role pipeline.Role) bool {
	return m.expanded[role]
}
func (m *mockDashboardState) History() []RunSummary { return m.history }
func (m *mockDashboardState) SnapshotPath() string  { return m.snapshotPath }
func (m *mockDashboardState) StatusMessage() string { return m.statusMsg }
func (m *mockDashboardState) SpinnerFrame() string  { return m.spinner }
func (m *mockDashboardState) TerminalWidth() int    { return m.width }
func (m *mockDashboardState) TerminalHeight() int   { return m.height }

func TestTabTitles(t *testing.T) {
	tests := []struct {
		tab  Tab
		want string
	}{
		{TabPipeline, "Pipeline"},
		{TabHistory, "History"},
		{Tab(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tab.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderHeader(t *testing.T) {
	dv := NewDashboardView()

	t.Run("no run", func(t *testing.T) {
		state := &mockDashboardState{width: 80, height: 24}
		result := dv.RenderHeader(state, 80)

		if !strings.Contains(result, "Switchboard") {
			t.Error("header should contain the application title")
		}
		if !strings.Contains(result, "Idle") {
			t.Error("header should show the idle phase before a run starts")
		}
	})

	t.Run("with scenario", func(t *testing.T) {
		s := pipeline.NewState()
		s.RunID = "run-1"
		s.Scenario = "Billing dispute"
		s.Phase = pipeline.PhaseSupervisor

		state := &mockDashboardState{state: s, width: 100, height: 24}
		result := dv.RenderHeader(state, 100)

		if !strings.Contains(result, "Billing dispute") {
			t.Error("header should contain the scenario label")
		}
		if !strings.Contains(result, "Supervisor Review") {
			t.Error("header should show the current phase title")
		}
	})

	t.Run("narrow terminal drops the badge", func(t *testing.T) {
		state := &mockDashboardState{width: 12, height: 24}
		result := dv.RenderHeader(state, 12)

		if !strings.Contains(result, "Switchboard") {
			t.Error("narrow header should still contain the title")
		}
	})
}

func TestRenderTabs(t *testing.T) {
	dv := NewDashboardView()
	state := &mockDashboardState{activeTab: TabHistory}

	result := dv.RenderTabs(state)

	if !strings.Contains(result, "Pipeline") {
		t.Error("tab row should contain the Pipeline tab")
	}
	if !strings.Contains(result, "History") {
		t.Error("tab row should contain the History tab")
	}
}

func TestRenderStatusBar(t *testing.T) {
	dv := NewDashboardView()

	t.Run("default hint", func(t *testing.T) {
		state := &mockDashboardState{}
		result := dv.RenderStatusBar(state, 80)

		if !strings.Contains(result, "press [r]") {
			t.Error("status bar should show the run hint when idle")
		}
	})

	t.Run("with run and message", func(t *testing.T) {
		s := pipeline.NewState()
		s.RunID = "0a1b2c3d-ffff-4000-8000-000000000000"

		state := &mockDashboardState{
			state:        s,
			runActive:    true,
			spinner:      "⠋",
			snapshotPath: "snapshots/run.yaml",
			statusMsg:    "snapshot reloaded",
		}
		result := dv.RenderStatusBar(state, 120)

		if !strings.Contains(result, "0a1b2c3d") {
			t.Error("status bar should show the short run ID")
		}
		if strings.Contains(result, "0a1b2c3d-ffff") {
			t.Error("status bar should truncate the run ID to eight characters")
		}
		if !strings.Contains(result, "running") {
			t.Error("status bar should show the running indicator")
		}
		if !strings.Contains(result, "snapshots/run.yaml") {
			t.Error("status bar should show the watched snapshot path")
		}
		if !strings.Contains(result, "snapshot reloaded") {
			t.Error("status bar should show the transient message")
		}
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"longer than max", "hello world", 8, "hello..."},
		{"max too small", "hello", 3, "hello"},
		{"unicode", "héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestFormatTimeAgo(t *testing.T) {
	if got := FormatTimeAgo(time.Time{}); got != "" {
		t.Errorf("FormatTimeAgo(zero) = %q, want empty", got)
	}

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 30 * time.Second, "30s ago"},
		{"minutes", 5 * time.Minute, "5m ago"},
		{"hours", 3 * time.Hour, "3h ago"},
		{"days", 49 * time.Hour, "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTimeAgo(time.Now().Add(-tt.ago))
			if got != tt.want {
				t.Errorf("FormatTimeAgo(-%v) = %q, want %q", tt.ago, got, tt.want)
			}
		})
	}
}

func TestFormatDurationCompact(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{5 * time.Minute, "5m"},
		{2*time.Hour + 15*time.Minute, "2h15m"},
		{3 * time.Hour, "3h"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDurationCompact(tt.d); got != tt.want {
				t.Errorf("FormatDurationCompact(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatElapsedMS(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{420, "420ms"},
		{999, "999ms"},
		{1600, "1.6s"},
		{5400, "5.4s"},
		{12000, "12s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatElapsedMS(tt.ms); got != tt.want {
				t.Errorf("FormatElapsedMS(%d) = %q, want %q", tt.ms, got, tt.want)
			}
		})
	}
}

func TestShortRunID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"0a1b2c3d-ffff-4000-8000-000000000000", "0a1b2c3d"},
		{"short", "short"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := shortRunID(tt.id); got != tt.want {
				t.Errorf("shortRunID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
