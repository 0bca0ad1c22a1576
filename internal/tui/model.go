package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opsline/switchboard/internal/config"
	"github.com/opsline/switchboard/internal/event"
	"github.com/opsline/switchboard/internal/logging"
	"github.com/opsline/switchboard/internal/pipeline"
	"github.com/opsline/switchboard/internal/tui/keymap"
	"github.com/opsline/switchboard/internal/tui/msg"
	"github.com/opsline/switchboard/internal/tui/styles"
	"github.com/opsline/switchboard/internal/tui/update"
	"github.com/opsline/switchboard/internal/tui/view"
)

// HistoryLimit caps the in-memory run history.
const HistoryLimit = 50

// statusTTL is how long a transient status bar message stays visible.
const statusTTL = 4 * time.Second

// Model holds the dashboard state. It implements view.DashboardState for
// rendering and update.Context for the message handlers, so all mutation
// funnels through the single bubbletea update loop.
type Model struct {
	cfg    *config.Config
	logger *logging.Logger
	bus    *event.Bus

	state     *pipeline.State
	sequencer *pipeline.Sequencer
	generator *pipeline.Generator

	keys    keymap.KeyMap
	help    help.Model
	spinner spinner.Model

	dashboard *view.DashboardView
	pipeline  *view.PipelineView
	sidebar   *view.SidebarView
	runs      *view.HistoryView

	// UI state
	width        int
	height       int
	ready        bool
	quitting     bool
	activeTab    view.Tab
	selectedRole int
	expanded     map[pipeline.Role]bool

	history   []view.RunSummary
	statusMsg string

	// snapshotPath is the watched snapshot file, empty when not watching.
	snapshotPath string
	theme        string
	autostart    bool
}

var (
	_ view.DashboardState = (*Model)(nil)
	_ update.Context      = (*Model)(nil)
)

// NewModel creates the dashboard model from resolved configuration.
func NewModel(cfg *config.Config, logger *logging.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}

	if config.IsValidTheme(cfg.TUI.Theme) {
		styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))
	}

	bus := event.NewBus()
	bus.SetPanicHandler(func(eventType string, recovered any) {
		logger.Error("event subscriber panicked", "event", eventType, "panic", recovered)
	})
	wireEventLogging(bus, logger)

	state := pipeline.NewState()
	sequencer := pipeline.NewSequencer(state,
		pipeline.WithBus(bus),
		pipeline.WithLogger(logger),
		pipeline.WithSpeed(cfg.Demo.Speed),
	)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.Primary

	m := Model{
		cfg:       cfg,
		logger:    logger,
		bus:       bus,
		state:     state,
		sequencer: sequencer,
		generator: pipeline.NewGenerator(cfg.Demo.Seed),
		keys:      keymap.Default(),
		help:      help.New(),
		spinner:   sp,
		dashboard: view.NewDashboardView(),
		pipeline:  view.NewPipelineView(),
		sidebar:   view.NewSidebarView(),
		runs:      view.NewHistoryView(),
		expanded:  make(map[pipeline.Role]bool),
		theme:     cfg.TUI.Theme,
		autostart: cfg.Demo.Autostart,
	}

	if cfg.Snapshot.Watch {
		m.snapshotPath = cfg.Snapshot.ResolvePath()
	}

	return m
}

// wireEventLogging subscribes a structured-log sink to every pipeline
// event on the bus.
func wireEventLogging(bus *event.Bus, logger *logging.Logger) {
	bus.SubscribeAll(func(ev event.Event) {
		switch e := ev.(type) {
		case event.RunStartedEvent:
			logger.Debug("event: run started", "run_id", e.RunID, "scenario", e.Scenario)
		case event.RunCompletedEvent:
			logger.Debug("event: run completed", "run_id", e.RunID,
				"confidence", e.Confidence, "elapsed_ms", e.ElapsedMS)
		case event.RunCanceledEvent:
			logger.Debug("event: run canceled", "run_id", e.RunID, "reason", e.Reason)
		case event.PhaseChangedEvent:
			logger.Debug("event: phase changed", "run_id", e.RunID, "from", e.From, "to", e.To)
		case event.RecordUpdatedEvent:
			logger.Debug("event: record updated", "run_id", e.RunID, "role", e.Role, "status", e.Status)
		case event.SnapshotAppliedEvent:
			logger.Debug("event: snapshot applied", "path", e.Path, "phase", e.Phase)
		default:
			logger.Debug("event", "type", ev.EventType())
		}
	})
}

// Init schedules the recurring tick, the spinner, and the initial
// snapshot load when one is configured.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		msg.Tick(m.cfg.TUI.TickInterval()),
		m.spinner.Tick,
	}
	if path := m.cfg.Snapshot.ResolvePath(); path != "" {
		cmds = append(cmds, msg.LoadSnapshotAsync(path))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.help.Width = message.Width
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		return m, cmd

	case msg.TickMsg:
		if m.autostart {
			m.autostart = false
			update.HandleStartRun(&m, m.generator.Scenario(), time.Time(message))
		}
		update.HandleTick(&m, message)
		return m, tea.Batch(msg.Tick(m.cfg.TUI.TickInterval()), m.expireStatus())

	case msg.SnapshotLoadedMsg:
		update.HandleSnapshotLoaded(&m, message)
		return m, m.expireStatus()

	case msg.SnapshotChangedMsg:
		update.HandleSnapshotChanged(&m, message)
		return m, m.expireStatus()

	case msg.ErrMsg:
		update.HandleError(&m, message)
		return m, m.expireStatus()

	case msg.StatusExpiredMsg:
		update.HandleStatusExpired(&m, message)
		return m, nil
	}

	return m, nil
}

// handleKeypress processes keyboard input.
func (m Model) handleKeypress(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Quit):
		if m.sequencer.Active() {
			update.HandleCancelRun(&m, "shutdown", time.Now())
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(k, m.keys.StartRun):
		update.HandleStartRun(&m, m.generator.Scenario(), time.Now())
		return m, m.expireStatus()

	case key.Matches(k, m.keys.CancelRun):
		update.HandleCancelRun(&m, "canceled by user", time.Now())
		return m, m.expireStatus()

	case key.Matches(k, m.keys.Reload):
		if path := m.cfg.Snapshot.ResolvePath(); path != "" {
			return m, msg.LoadSnapshotAsync(path)
		}
		m.statusMsg = "no snapshot configured"
		return m, m.expireStatus()

	case key.Matches(k, m.keys.NextTab):
		m.activeTab = nextTab(m.activeTab, 1)
		return m, nil

	case key.Matches(k, m.keys.PrevTab):
		m.activeTab = nextTab(m.activeTab, -1)
		return m, nil

	case key.Matches(k, m.keys.Up):
		if m.activeTab == view.TabPipeline && m.selectedRole > 0 {
			m.selectedRole--
		}
		return m, nil

	case key.Matches(k, m.keys.Down):
		if m.activeTab == view.TabPipeline && m.selectedRole < len(pipeline.Roles())-1 {
			m.selectedRole++
		}
		return m, nil

	case key.Matches(k, m.keys.Expand):
		if m.activeTab == view.TabPipeline {
			role := pipeline.Roles()[m.selectedRole]
			m.expanded[role] = !m.expanded[role]
		}
		return m, nil

	case key.Matches(k, m.keys.CycleTheme):
		m.cycleTheme()
		return m, m.expireStatus()
	}

	return m, nil
}

// cycleTheme switches to the next built-in theme.
func (m *Model) cycleTheme() {
	themes := styles.BuiltinThemes()
	next := 0
	for i, name := range themes {
		if name == m.theme {
			next = (i + 1) % len(themes)
			break
		}
	}
	m.theme = themes[next]
	styles.SetActiveTheme(styles.ThemeName(m.theme))
	m.statusMsg = "theme: " + m.theme
}

// expireStatus schedules the status bar message to clear. Safe to return
// when no message is set.
func (m *Model) expireStatus() tea.Cmd {
	if m.statusMsg == "" {
		return nil
	}
	return msg.ClearStatusAfter(statusTTL)
}

func nextTab(t view.Tab, delta int) view.Tab {
	tabs := view.Tabs()
	idx := (int(t) + delta + len(tabs)) % len(tabs)
	return tabs[idx]
}

// View renders the dashboard.
func (m Model) View() string {
	if !m.ready {
		return "Starting switchboard..."
	}

	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(m.dashboard.RenderHeader(&m, m.width))
	b.WriteString("\n")
	b.WriteString(m.dashboard.RenderTabs(&m))
	b.WriteString("\n\n")

	sidebarWidth, contentWidth, mainHeight := MainAreaDimensions(m.width, m.height, m.cfg.TUI.SidebarWidth)

	var content string
	switch m.activeTab {
	case view.TabHistory:
		content = m.runs.Render(&m, contentWidth, mainHeight)
	default:
		content = m.pipeline.Render(&m, contentWidth, mainHeight)
	}
	sidebar := m.sidebar.RenderSidebar(&m, sidebarWidth, mainHeight)

	sidebarStyled := lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(mainHeight).
		MaxHeight(mainHeight).
		Render(sidebar)
	contentStyled := lipgloss.NewStyle().
		Width(contentWidth).
		Height(mainHeight).
		MaxHeight(mainHeight).
		Render(content)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyled, " ", contentStyled))
	b.WriteString("\n")

	b.WriteString(m.dashboard.RenderStatusBar(&m, m.width))
	b.WriteString("\n")
	b.WriteString(styles.HelpBar.Render(m.help.View(m.keys)))

	return b.String()
}

// DashboardState implementation

// Pipeline returns the pipeline state being rendered.
func (m *Model) Pipeline() *pipeline.State { return m.state }

// RunActive reports whether a demo run is in progress.
func (m *Model) RunActive() bool { return m.sequencer.Active() }

// ActiveTab returns the selected content tab.
func (m *Model) ActiveTab() view.Tab { return m.activeTab }

// SelectedRole returns the index of the highlighted agent card.
func (m *Model) SelectedRole() int { return m.selectedRole }

// ReasoningExpanded reports whether a card shows its full reasoning.
func (m *Model) ReasoningExpanded(role pipeline.Role) bool { return m.expanded[role] }

// History returns finished runs, newest first.
func (m *Model) History() []view.RunSummary { return m.history }

// SnapshotPath returns the watched snapshot file, empty when not watching.
func (m *Model) SnapshotPath() string { return m.snapshotPath }

// StatusMessage returns the transient status bar message.
func (m *Model) StatusMessage() string { return m.statusMsg }

// SpinnerFrame returns the current spinner frame.
func (m *Model) SpinnerFrame() string { return m.spinner.View() }

// TerminalWidth returns the terminal width in columns.
func (m *Model) TerminalWidth() int { return m.width }

// TerminalHeight returns the terminal height in rows.
func (m *Model) TerminalHeight() int { return m.height }

// update.Context implementation

// Sequencer returns the demo sequencer.
func (m *Model) Sequencer() *pipeline.Sequencer { return m.sequencer }

// ReplaceState copies a loaded snapshot into the live state. The pointer
// is preserved so the sequencer keeps mutating the same state.
func (m *Model) ReplaceState(s *pipeline.State) {
	if s == nil {
		return
	}
	*m.state = *s
}

// AppendHistory records a finished run, newest first, capped at
// HistoryLimit.
func (m *Model) AppendHistory(r view.RunSummary) {
	m.history = append([]view.RunSummary{r}, m.history...)
	if len(m.history) > HistoryLimit {
		m.history = m.history[:HistoryLimit]
	}
}

// Logger returns the structured logger.
func (m *Model) Logger() *logging.Logger { return m.logger }

// SetStatusMessage sets the transient status bar message.
func (m *Model) SetStatusMessage(text string) { m.statusMsg = text }

// ClearStatusMessage clears the status bar message.
func (m *Model) ClearStatusMessage() { m.statusMsg = "" }
