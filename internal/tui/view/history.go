package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/opsline/switchboard/internal/tui/styles"
)

// HistoryMaxRows caps how many finished runs the history tab lists.
const HistoryMaxRows = 20

// Run outcome labels used in history rows.
const (
	OutcomeComplete = "complete"
	OutcomeCanceled = "canceled"
)

// RunSummary is the retained record of one finished run.
type RunSummary struct {
	RunID      string
	Scenario   string
	Outcome    string
	Confidence float64
	ElapsedMS  int64
	FinishedAt time.Time
}

// HistoryView renders the history tab listing finished runs.
type HistoryView struct{}

// NewHistoryView creates a new HistoryView.
func NewHistoryView() *HistoryView {
	return &HistoryView{}
}

// Render renders the run history, newest first.
func (hv *HistoryView) Render(state DashboardState, width, height int) string {
	history := state.History()
	if len(history) == 0 {
		var b strings.Builder
		b.WriteString(styles.Muted.Render("No finished runs yet"))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpKey.Render("[r]"))
		b.WriteString(styles.Muted.Render(" Run demo"))
		return b.String()
	}

	rows := history
	maxRows := max(height-4, 3)
	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	scenarioW := 24
	if width < 90 {
		scenarioW = max(width-56, 12)
	}

	var b strings.Builder
	header := fmt.Sprintf("%-9s  %-*s  %-9s  %-10s  %-8s  %s",
		"RUN", scenarioW, "SCENARIO", "OUTCOME", "CONFIDENCE", "ELAPSED", "FINISHED")
	b.WriteString(styles.Muted.Bold(true).Render(header))
	b.WriteString("\n")

	// Pad before styling; ANSI escape codes would skew the %-*s widths.
	for _, run := range rows {
		id := fmt.Sprintf("%-9s", shortRunID(run.RunID))
		scenario := fmt.Sprintf("%-*s", scenarioW, truncate(run.Scenario, scenarioW))
		outcome := fmt.Sprintf("%-9s", run.Outcome)
		conf := fmt.Sprintf("%-10s", FormatConfidence(run.Confidence))
		elapsed := fmt.Sprintf("%-8s", FormatElapsedMS(run.ElapsedMS))
		ago := FormatTimeAgo(run.FinishedAt)

		outcomeStyle := styles.Secondary
		if run.Outcome != OutcomeComplete {
			outcomeStyle = styles.Warning
		}

		b.WriteString(styles.Muted.Render(id) + "  " +
			styles.Text.Render(scenario) + "  " +
			outcomeStyle.Render(outcome) + "  " +
			styles.Text.Render(conf) + "  " +
			styles.Muted.Render(elapsed) + "  " +
			styles.Muted.Render(ago))
		b.WriteString("\n")
	}

	if len(history) > maxRows {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("… %d more", len(history)-maxRows)))
		b.WriteString("\n")
	}

	return b.String()
}
