package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opsline/switchboard/internal/pipeline"
	"github.com/opsline/switchboard/internal/tui/styles"
)

// Agent card layout constants.
const (
	// CardMinWidth is the narrowest an agent card may render side by side.
	CardMinWidth = 26
	// CardGap is the gap between side-by-side agent cards.
	CardGap = 1
	// ReasoningMaxSteps caps the reasoning steps shown on an expanded card.
	ReasoningMaxSteps = 6
)

// Pipeline panel style aliases for better readability.
var (
	ppActive  = styles.Primary
	ppMuted   = styles.Muted
	ppSuccess = styles.Secondary
)

// PipelineView renders the main panel: one decision card per agent stage,
// laid out side by side when the terminal is wide enough.
type PipelineView struct{}

// NewPipelineView creates a new PipelineView.
func NewPipelineView() *PipelineView {
	return &PipelineView{}
}

// Render renders the pipeline panel for the current run.
func (pv *PipelineView) Render(state DashboardState, width, height int) string {
	s := state.Pipeline()
	if s == nil {
		s = pipeline.NewState()
	}

	var b strings.Builder
	b.WriteString(renderPhaseRail(s.Phase))
	b.WriteString("\n\n")

	roles := pipeline.Roles()
	cardWidth := (width - 2*CardGap) / len(roles)
	if cardWidth >= CardMinWidth {
		cards := make([]string, 0, len(roles))
		for i, role := range roles {
			cards = append(cards, pv.renderAgentCard(state, s, role, i, cardWidth))
		}
		gap := strings.Repeat(" ", CardGap)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, interleave(cards, gap)...))
	} else {
		// Narrow terminal: stack the cards vertically at full width
		for i, role := range roles {
			b.WriteString(pv.renderAgentCard(state, s, role, i, max(width-2, CardMinWidth)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderAgentCard renders one agent stage card. The displayed status comes
// from the resolver, so a card can show completed even when the agent never
// wrote a record during this run.
func (pv *PipelineView) renderAgentCard(state DashboardState, s *pipeline.State, role pipeline.Role, idx, width int) string {
	rec, ok := s.RecordFor(role)
	var recPtr *pipeline.Record
	if ok {
		recPtr = &rec
	}
	status := pipeline.ResolveStatus(role, s.Phase, recPtr)

	var b strings.Builder

	icon := lipgloss.NewStyle().
		Foreground(styles.StatusColor(string(status))).
		Render(styles.StatusIcon(string(status)))
	if status == pipeline.StatusProcessing && state.SpinnerFrame() != "" {
		icon = ppActive.Render(state.SpinnerFrame())
	}
	b.WriteString(icon + " " + styles.CardTitle.Render(role.Title()))
	b.WriteString("\n")

	innerWidth := max(width-4, 12)

	switch status {
	case pipeline.StatusCompleted:
		renderDecisionBody(&b, recPtr, innerWidth, state.ReasoningExpanded(role))
	case pipeline.StatusProcessing:
		b.WriteString(ppActive.Render(processingLabel(role)))
		b.WriteString("\n")
	default:
		b.WriteString(ppMuted.Render("Waiting"))
		b.WriteString("\n")
	}

	card := styles.Card
	if idx == state.SelectedRole() {
		card = styles.CardActive
	}
	return card.Width(width).Render(b.String())
}

// renderDecisionBody renders the completed decision's fields into the card.
// Records resolved completed without a stored decision render a placeholder
// line instead of failing.
func renderDecisionBody(b *strings.Builder, rec *pipeline.Record, width int, expanded bool) {
	if rec == nil || rec.Decision == nil {
		b.WriteString(ppMuted.Render("Decision recorded"))
		b.WriteString("\n")
		return
	}

	d := rec.Decision

	if d.Summary != "" {
		b.WriteString(styles.Text.Render(truncate(d.Summary, width)))
		b.WriteString("\n")
	}

	b.WriteString(ppMuted.Render("Intent: ") + styles.Text.Render(d.IntentLabel()))
	b.WriteString("\n")

	tier := d.Tier()
	meterWidth := max(min(width-10, 14), 5)
	b.WriteString(RenderConfidenceMeter(d.Confidence, meterWidth))
	b.WriteString(" ")
	b.WriteString(lipgloss.NewStyle().Foreground(styles.ConfidenceColor(string(tier))).Render(string(tier)))
	b.WriteString("\n")

	riskStyle := lipgloss.NewStyle().Foreground(styles.RiskColor(string(d.Risk)))
	b.WriteString(ppMuted.Render("Risk: ") + riskStyle.Render(d.Risk.Label()))
	if rec.ElapsedMS > 0 {
		b.WriteString("  " + ppMuted.Render(FormatElapsedMS(rec.ElapsedMS)))
	}
	b.WriteString("\n")

	if len(d.Reasoning) == 0 {
		return
	}
	if !expanded {
		b.WriteString(ppMuted.Render(fmt.Sprintf("[⏎] %d reasoning steps", len(d.Reasoning))))
		b.WriteString("\n")
		return
	}

	b.WriteString("\n")
	b.WriteString(ppMuted.Render("Reasoning"))
	b.WriteString("\n")
	steps := d.Reasoning
	if len(steps) > ReasoningMaxSteps {
		steps = steps[:ReasoningMaxSteps]
	}
	for i, step := range steps {
		b.WriteString(ppMuted.Render(fmt.Sprintf("%d.", i+1)) + " " + styles.Text.Render(truncate(step, width-3)))
		b.WriteString("\n")
	}
	if len(d.Reasoning) > ReasoningMaxSteps {
		b.WriteString(ppMuted.Render(fmt.Sprintf("… %d more", len(d.Reasoning)-ReasoningMaxSteps)))
		b.WriteString("\n")
	}
}

// processingLabel returns the in-progress label for an agent stage.
func processingLabel(role pipeline.Role) string {
	switch role {
	case pipeline.RolePrimary:
		return "Drafting response..."
	case pipeline.RoleSupervisor:
		return "Reviewing decision..."
	case pipeline.RoleEscalation:
		return "Assessing handoff..."
	default:
		return "Working..."
	}
}

// renderPhaseRail renders the stage progression line above the cards.
// Passed stages render green, the active stage renders highlighted.
func renderPhaseRail(phase pipeline.Phase) string {
	rail := []pipeline.Phase{
		pipeline.PhasePrimary,
		pipeline.PhaseSupervisor,
		pipeline.PhaseEscalation,
		pipeline.PhaseComplete,
	}

	parts := make([]string, 0, len(rail))
	for _, p := range rail {
		style := ppMuted
		switch {
		case p == phase:
			style = lipgloss.NewStyle().Bold(true).Foreground(styles.PhaseColor(string(p)))
		case p.Index() < phase.Index():
			style = ppSuccess
		}
		parts = append(parts, style.Render(p.Title()))
	}
	return strings.Join(parts, ppMuted.Render(" → "))
}

// interleave joins rendered cards with a gap column for horizontal layout.
func interleave(cards []string, gap string) []string {
	out := make([]string, 0, 2*len(cards)-1)
	for i, card := range cards {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, card)
	}
	return out
}
