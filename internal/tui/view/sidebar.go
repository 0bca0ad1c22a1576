package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opsline/switchboard/internal/pipeline"
	"github.com/opsline/switchboard/internal/tui/styles"
)

// SidebarView renders the run summary sidebar: contact metadata, the stage
// checklist and the overall confidence readout.
type SidebarView struct{}

// NewSidebarView creates a new SidebarView.
func NewSidebarView() *SidebarView {
	return &SidebarView{}
}

// RenderSidebar renders the sidebar for the current run.
func (sv *SidebarView) RenderSidebar(state DashboardState, width, height int) string {
	var b strings.Builder

	b.WriteString(styles.SidebarTitle.Render("Run"))
	b.WriteString("\n")

	s := state.Pipeline()
	if s == nil || (s.RunID == "" && len(s.Records) == 0) {
		renderSidebarEmptyState(&b)
		return styles.Sidebar.Width(width - 2).Render(b.String())
	}

	maxLen := max(width-6, 10)

	if s.Scenario != "" {
		b.WriteString(styles.Text.Render(truncate(s.Scenario, maxLen)))
		b.WriteString("\n")
	}
	if s.Contact != "" {
		b.WriteString(styles.Muted.Render(truncate(s.Contact, maxLen)))
		b.WriteString("\n")
	}
	if s.Channel != "" {
		b.WriteString(styles.Muted.Render("via ") + styles.Text.Render(s.Channel))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.SidebarSectionTitle.Render("Stages"))
	b.WriteString("\n")
	renderStageChecklist(&b, s, maxLen)

	b.WriteString("\n")
	b.WriteString(styles.SidebarSectionTitle.Render("Confidence"))
	b.WriteString("\n")
	renderOverallConfidence(&b, s)

	if total := s.TotalElapsedMS(); total > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("elapsed ") + styles.Text.Render(FormatElapsedMS(total)))
		b.WriteString("\n")
	}

	if path := state.SnapshotPath(); path != "" {
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("⟳ " + truncate(path, max(maxLen-2, 7))))
		b.WriteString("\n")
	}

	return styles.Sidebar.Width(width - 2).Render(b.String())
}

// renderSidebarEmptyState renders the hint block shown before the first run.
func renderSidebarEmptyState(b *strings.Builder) {
	b.WriteString(styles.Muted.Render("No run yet"))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpKey.Render("[r]"))
	b.WriteString(styles.Muted.Render(" Run demo"))
	b.WriteString("\n")
	b.WriteString(styles.HelpKey.Render("[?]"))
	b.WriteString(styles.Muted.Render(" Help"))
}

// renderStageChecklist renders one line per agent stage with its resolved
// status icon and completed timing.
func renderStageChecklist(b *strings.Builder, s *pipeline.State, maxLen int) {
	resolved := pipeline.ResolveAll(s)
	for _, role := range pipeline.Roles() {
		status := resolved[role]
		icon := lipgloss.NewStyle().
			Foreground(styles.StatusColor(string(status))).
			Render(styles.StatusIcon(string(status)))

		line := icon + " " + styles.SidebarItem.Render(truncate(role.Title(), max(maxLen-8, 8)))
		if rec, ok := s.RecordFor(role); ok && rec.Completed() && rec.ElapsedMS > 0 {
			line += " " + styles.Muted.Render(FormatElapsedMS(rec.ElapsedMS))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// renderOverallConfidence renders the overall confidence meter for the run.
func renderOverallConfidence(b *strings.Builder, s *pipeline.State) {
	if s.CompletedCount() == 0 {
		b.WriteString(styles.Muted.Render("awaiting decisions"))
		b.WriteString("\n")
		return
	}

	score := s.OverallConfidence()
	tier := s.OverallTier()
	b.WriteString(RenderConfidenceMeter(score, 10))
	b.WriteString(" ")
	b.WriteString(lipgloss.NewStyle().Foreground(styles.ConfidenceColor(string(tier))).Render(string(tier)))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(RenderMiniProgressBar(s.CompletedCount(), len(pipeline.Roles()), 5)))
	b.WriteString("\n")
}
