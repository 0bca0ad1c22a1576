package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opsline/switchboard/internal/config"
	"github.com/opsline/switchboard/internal/pipeline"
	"github.com/opsline/switchboard/internal/tui/msg"
	"github.com/opsline/switchboard/internal/tui/styles"
	"github.com/opsline/switchboard/internal/tui/view"
)

// newTestModel builds a model with autostart and snapshot watching off so
// tests control every transition themselves.
func newTestModel() Model {
	cfg := config.Default()
	cfg.Demo.Autostart = false
	cfg.Snapshot.Watch = false
	return NewModel(cfg, nil)
}

func applyMsg(t *testing.T, m Model, message tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(message)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel()

	if m.state == nil {
		t.Fatal("state should be initialized")
	}
	if m.state.Phase != pipeline.PhaseIdle {
		t.Errorf("phase = %v, want idle", m.state.Phase)
	}
	if m.activeTab != view.TabPipeline {
		t.Errorf("activeTab = %v, want pipeline tab", m.activeTab)
	}
	if len(m.history) != 0 {
		t.Errorf("history = %d entries, want 0", len(m.history))
	}
	if m.Sequencer().State() != m.Pipeline() {
		t.Error("sequencer and model must share the same state")
	}
	if m.bus.SubscriptionCount() != 1 {
		t.Errorf("bus subscriptions = %d, want 1 (event logging)", m.bus.SubscriptionCount())
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel()

	m = applyMsg(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if !m.ready {
		t.Error("model should be ready after the first resize")
	}
	if m.width != 120 || m.height != 40 {
		t.Errorf("dimensions = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestModel_StartRunKey(t *testing.T) {
	m := newTestModel()

	m = applyMsg(t, m, runeKey('r'))

	if !m.RunActive() {
		t.Fatal("run should be active after pressing r")
	}
	if m.Pipeline().RunID == "" {
		t.Error("run ID should be assigned")
	}
	if m.Pipeline().Phase != pipeline.PhasePrimary {
		t.Errorf("phase = %v, want primary", m.Pipeline().Phase)
	}
	if m.statusMsg != "" {
		t.Errorf("status = %q, want empty after a clean start", m.statusMsg)
	}
}

func TestModel_StartRunKey_Reentrant(t *testing.T) {
	m := newTestModel()

	m = applyMsg(t, m, runeKey('r'))
	runID := m.Pipeline().RunID
	m = applyMsg(t, m, runeKey('r'))

	if m.Pipeline().RunID != runID {
		t.Error("pressing r during a run must not restart it")
	}
	if m.statusMsg != "run already in progress" {
		t.Errorf("status = %q, want re-entry warning", m.statusMsg)
	}
}

func TestModel_RunCompletion(t *testing.T) {
	m := newTestModel()

	m = applyMsg(t, m, runeKey('r'))
	scenario := m.Pipeline().Scenario
	m = applyMsg(t, m, msg.TickMsg(time.Now().Add(10*time.Second)))

	if m.RunActive() {
		t.Error("run should finish after the script elapses")
	}
	if m.Pipeline().Phase != pipeline.PhaseComplete {
		t.Errorf("phase = %v, want complete", m.Pipeline().Phase)
	}
	if len(m.history) != 1 {
		t.Fatalf("history = %d entries, want 1", len(m.history))
	}
	if m.history[0].Outcome != view.OutcomeComplete {
		t.Errorf("outcome = %q, want %q", m.history[0].Outcome, view.OutcomeComplete)
	}
	if m.history[0].Scenario != scenario {
		t.Errorf("history scenario = %q, want %q", m.history[0].Scenario, scenario)
	}
}

func TestModel_CancelRunKey(t *testing.T) {
	m := newTestModel()

	m = applyMsg(t, m, runeKey('r'))
	m = applyMsg(t, m, runeKey('c'))

	if m.RunActive() {
		t.Error("run should be inactive after cancel")
	}
	if len(m.history) != 1 {
		t.Fatalf("history = %d entries, want 1", len(m.history))
	}
	if m.history[0].Outcome != view.OutcomeCanceled {
		t.Errorf("outcome = %q, want %q", m.history[0].Outcome, view.OutcomeCanceled)
	}
	if m.statusMsg != "run canceled" {
		t.Errorf("status = %q, want cancel message", m.statusMsg)
	}
}

func TestModel_CancelWithoutRun(t *testing.T) {
	m := newTestModel()

	m = applyMsg(t, m, runeKey('c'))

	if len(m.history) != 0 {
		t.Errorf("history = %d entries, want 0", len(m.history))
	}
}

func TestModel_AutostartOnFirstTick(t *testing.T) {
	cfg := config.Default()
	cfg.Demo.Autostart = true
	cfg.Snapshot.Watch = false
	m := NewModel(cfg, nil)

	now := time.Now()
	m = applyMsg(t, m, msg.TickMsg(now))

	if !m.RunActive() {
		t.Fatal("autostart should begin a run on the first tick")
	}
	runID := m.Pipeline().RunID

	m = applyMsg(t, m, msg.TickMsg(now.Add(200*time.Millisecond)))
	if m.Pipeline().RunID != runID {
		t.Error("autostart must only trigger once")
	}
}

func TestModel_TabCycle(t *testing.T) {
	m := newTestModel()

	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activeTab != view.TabHistory {
		t.Errorf("activeTab = %v, want history tab", m.activeTab)
	}

	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activeTab != view.TabPipeline {
		t.Errorf("activeTab = %v, want pipeline tab after wrap", m.activeTab)
	}

	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.activeTab != view.TabHistory {
		t.Errorf("activeTab = %v, want history tab going backwards", m.activeTab)
	}
}

func TestModel_RoleSelection(t *testing.T) {
	m := newTestModel()

	for i := 0; i < 5; i++ {
		m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.selectedRole != len(pipeline.Roles())-1 {
		t.Errorf("selectedRole = %d, want clamp at %d", m.selectedRole, len(pipeline.Roles())-1)
	}

	for i := 0; i < 5; i++ {
		m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.selectedRole != 0 {
		t.Errorf("selectedRole = %d, want clamp at 0", m.selectedRole)
	}
}

func TestModel_RoleSelectionIgnoredOnHistoryTab(t *testing.T) {
	m := newTestModel()
	m.activeTab = view.TabHistory

	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyDown})

	if m.selectedRole != 0 {
		t.Errorf("selectedRole = %d, want 0 on the history tab", m.selectedRole)
	}
}

func TestModel_ExpandToggle(t *testing.T) {
	m := newTestModel()

	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.ReasoningExpanded(pipeline.RolePrimary) {
		t.Error("enter should expand the selected card's reasoning")
	}

	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ReasoningExpanded(pipeline.RolePrimary) {
		t.Error("enter should collapse on the second press")
	}

	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.ReasoningExpanded(pipeline.RoleSupervisor) {
		t.Error("expand should follow the selected role")
	}
	if m.ReasoningExpanded(pipeline.RolePrimary) {
		t.Error("expanding one card must not expand another")
	}
}

func TestModel_ThemeCycleKey(t *testing.T) {
	defer styles.SetActiveTheme(styles.ThemeDefault)

	m := newTestModel()

	m = applyMsg(t, m, runeKey('t'))

	if m.theme != "monokai" {
		t.Errorf("theme = %q, want %q", m.theme, "monokai")
	}
	if m.statusMsg != "theme: monokai" {
		t.Errorf("status = %q, want theme announcement", m.statusMsg)
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel()

	m = applyMsg(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help view")
	}

	m = applyMsg(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("? should collapse the help view again")
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)

	if !m.quitting {
		t.Error("q should set quitting")
	}
	if cmd == nil {
		t.Error("q should produce a quit command")
	}
	if m.View() != "Goodbye!\n" {
		t.Errorf("View() = %q, want goodbye message", m.View())
	}
}

func TestModel_QuitCancelsActiveRun(t *testing.T) {
	m := newTestModel()

	m = applyMsg(t, m, runeKey('r'))
	m = applyMsg(t, m, runeKey('q'))

	if m.RunActive() {
		t.Error("quitting should cancel the active run")
	}
	if len(m.history) != 1 {
		t.Fatalf("history = %d entries, want 1", len(m.history))
	}
	if m.history[0].Outcome != view.OutcomeCanceled {
		t.Errorf("outcome = %q, want %q", m.history[0].Outcome, view.OutcomeCanceled)
	}
}

func TestModel_SnapshotLoadedReplacesState(t *testing.T) {
	m := newTestModel()

	snap := pipeline.NewState()
	snap.Scenario = "Loaded scenario"
	snap.Phase = pipeline.PhaseSupervisor

	m = applyMsg(t, m, msg.SnapshotLoadedMsg{Path: "run.yaml", State: snap})

	if m.Pipeline().Scenario != "Loaded scenario" {
		t.Errorf("scenario = %q, want snapshot content", m.Pipeline().Scenario)
	}
	if m.Pipeline().Phase != pipeline.PhaseSupervisor {
		t.Errorf("phase = %v, want supervisor", m.Pipeline().Phase)
	}
	if m.Sequencer().State() != m.Pipeline() {
		t.Error("replacing state must preserve the shared pointer")
	}
	if m.statusMsg != "snapshot loaded" {
		t.Errorf("status = %q, want load confirmation", m.statusMsg)
	}
}

func TestModel_SnapshotIgnoredDuringRun(t *testing.T) {
	m := newTestModel()

	m = applyMsg(t, m, runeKey('r'))
	scenario := m.Pipeline().Scenario

	snap := pipeline.NewState()
	snap.Scenario = "Should not apply"
	m = applyMsg(t, m, msg.SnapshotChangedMsg{State: snap})

	if m.Pipeline().Scenario != scenario {
		t.Error("snapshot must not replace state during an active run")
	}
	if !strings.Contains(m.statusMsg, "snapshot ignored") {
		t.Errorf("status = %q, want ignore warning", m.statusMsg)
	}
}

func TestModel_StatusExpiry(t *testing.T) {
	m := newTestModel()
	m.statusMsg = "stale message"

	m = applyMsg(t, m, msg.StatusExpiredMsg{})

	if m.statusMsg != "" {
		t.Errorf("status = %q, want cleared", m.statusMsg)
	}
}

func TestModel_AppendHistoryCap(t *testing.T) {
	m := newTestModel()

	for i := 0; i < HistoryLimit+10; i++ {
		m.AppendHistory(view.RunSummary{RunID: fmt.Sprintf("run-%d", i)})
	}

	if len(m.history) != HistoryLimit {
		t.Errorf("history = %d entries, want %d", len(m.history), HistoryLimit)
	}
	if m.history[0].RunID != fmt.Sprintf("run-%d", HistoryLimit+9) {
		t.Errorf("history[0] = %q, want the newest run first", m.history[0].RunID)
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel()
	m = applyMsg(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.View()
	for _, want := range []string{"Switchboard", "Pipeline", "History", "No run yet", "press [r] to run the demo"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyTab})
	out = m.View()
	if !strings.Contains(out, "No finished runs yet") {
		t.Error("history tab should render its empty state")
	}
}

func TestModel_ViewBeforeReady(t *testing.T) {
	m := newTestModel()

	if !strings.Contains(m.View(), "Starting") {
		t.Error("View() should show the loading placeholder before the first resize")
	}
}

func TestModel_ViewDuringRun(t *testing.T) {
	m := newTestModel()
	m = applyMsg(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = applyMsg(t, m, runeKey('r'))
	m = applyMsg(t, m, msg.TickMsg(time.Now().Add(time.Second)))

	out := m.View()
	if !strings.Contains(out, "running") {
		t.Error("status bar should show the running indicator")
	}
	if !strings.Contains(out, "Primary Response") {
		t.Error("pipeline tab should render the agent cards")
	}
}
