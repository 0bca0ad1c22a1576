package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/opsline/switchboard/internal/pipeline"
	"github.com/opsline/switchboard/internal/tui/styles"
)

// Tab identifies a content tab in the main panel.
type Tab int

const (
	// TabPipeline shows the three agent decision cards.
	TabPipeline Tab = iota
	// TabHistory shows summaries of finished runs.
	TabHistory
)

// Tabs returns all tabs in display order.
func Tabs() []Tab {
	return []Tab{TabPipeline, TabHistory}
}

// Title returns the display name of the tab.
func (t Tab) Title() string {
	switch t {
	case TabPipeline:
		return "Pipeline"
	case TabHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// DashboardState provides the minimal state needed for dashboard rendering.
// This interface decouples the view components from the full Model
// implementation.
type DashboardState interface {
	// Pipeline returns the pipeline state for the current run.
	Pipeline() *pipeline.State
	// RunActive returns whether a scripted demo run is in progress.
	RunActive() bool
	// ActiveTab returns the currently selected content tab.
	ActiveTab() Tab
	// SelectedRole returns the index of the selected agent card.
	SelectedRole() int
	// ReasoningExpanded reports whether the role's reasoning list is expanded.
	ReasoningExpanded(role pipeline.Role) bool
	// History returns summaries of finished runs, newest first.
	History() []RunSummary
	// SnapshotPath returns the watched snapshot path, or empty.
	SnapshotPath() string
	// StatusMessage returns the transient status bar message, or empty.
	StatusMessage() string
	// SpinnerFrame returns the current spinner frame for processing cards.
	SpinnerFrame() string
	// TerminalWidth returns the terminal width.
	TerminalWidth() int
	// TerminalHeight returns the terminal height.
	TerminalHeight() int
}

// DashboardView handles rendering of the application chrome: the header
// bar, the tab row and the bottom status bar.
type DashboardView struct{}

// NewDashboardView creates a new DashboardView instance.
func NewDashboardView() *DashboardView {
	return &DashboardView{}
}

// RenderHeader renders the header bar with the application title, the
// loaded scenario and the current pipeline phase.
func (dv *DashboardView) RenderHeader(state DashboardState, width int) string {
	title := "Switchboard"
	s := state.Pipeline()
	if s != nil && s.Scenario != "" {
		title = fmt.Sprintf("Switchboard: %s", truncate(s.Scenario, 48))
	}

	phase := pipeline.PhaseIdle
	if s != nil {
		phase = s.Phase
	}
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.PhaseColor(string(phase))).
		Render(phase.Title())

	gap := width - lipgloss.Width(title) - lipgloss.Width(badge) - 2
	if gap < 1 {
		return styles.Header.Width(width).Render(title)
	}
	return styles.Header.Width(width).Render(title + strings.Repeat(" ", gap) + badge)
}

// RenderTabs renders the tab row with the active tab highlighted.
func (dv *DashboardView) RenderTabs(state DashboardState) string {
	parts := make([]string, 0, len(Tabs()))
	for _, tab := range Tabs() {
		if tab == state.ActiveTab() {
			parts = append(parts, styles.TabActive.Render(tab.Title()))
		} else {
			parts = append(parts, styles.TabInactive.Render(tab.Title()))
		}
	}
	return strings.Join(parts, " ")
}

// RenderStatusBar renders the bottom status line: run identity on the
// left, snapshot source and transient messages after it.
func (dv *DashboardView) RenderStatusBar(state DashboardState, width int) string {
	var parts []string

	s := state.Pipeline()
	if s != nil && s.RunID != "" {
		parts = append(parts, styles.Muted.Render("run ")+styles.Text.Render(shortRunID(s.RunID)))
	}
	if state.RunActive() {
		frame := state.SpinnerFrame()
		if frame != "" {
			frame += " "
		}
		parts = append(parts, styles.Secondary.Render(frame+"running"))
	}
	if path := state.SnapshotPath(); path != "" {
		parts = append(parts, styles.Muted.Render("watching "+truncate(path, 40)))
	}
	if msg := state.StatusMessage(); msg != "" {
		parts = append(parts, styles.WarningMsg.Render(msg))
	}
	if len(parts) == 0 {
		parts = append(parts, styles.Muted.Render("press [r] to run the demo"))
	}

	return styles.StatusBar.Width(width).Render(strings.Join(parts, styles.Muted.Render("  │  ")))
}

// shortRunID returns the first eight characters of a run ID for display.
func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate truncates a string to max length, adding ellipsis if needed.
// Uses runes to properly handle Unicode characters.
func truncate(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// FormatTimeAgo formats a time as a human-readable relative duration
// (e.g., "3m ago", "2h ago"). Returns empty string if the time is zero.
func FormatTimeAgo(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// FormatDurationCompact formats a duration in a compact human-readable
// format. Examples: "30s", "5m", "2h15m"
func FormatDurationCompact(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins > 0 {
		return fmt.Sprintf("%dh%dm", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatElapsedMS formats a millisecond agent timing for card display.
// Examples: "420ms", "1.6s", "12s"
func FormatElapsedMS(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	if ms < 10000 {
		return fmt.Sprintf("%.1fs", float64(ms)/1000)
	}
	return fmt.Sprintf("%ds", ms/1000)
}
