package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opsline/switchboard/internal/pipeline"
	"github.com/opsline/switchboard/internal/tui/styles"
)

// RenderConfidenceMeter renders a confidence score as a bar colored by its
// tier. Example: [███████░░░] 70%
func RenderConfidenceMeter(score float64, barWidth int) string {
	percent := int(pipeline.ClampScore(score)*100 + 0.5)
	filled := (percent * barWidth) / 100
	empty := barWidth - filled

	tier := pipeline.TierForScore(score)
	barStyle := lipgloss.NewStyle().Foreground(styles.ConfidenceColor(string(tier)))

	bar := barStyle.Render(strings.Repeat("█", filled)) + styles.Muted.Render(strings.Repeat("░", empty))
	return fmt.Sprintf("[%s] %d%%", bar, percent)
}

// RenderMiniProgressBar renders a compact stage progress indicator.
// Example: [███░░] 2/3
func RenderMiniProgressBar(completed, total, barWidth int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", barWidth) + "] 0/0"
	}

	filled := (completed * barWidth) / total
	empty := barWidth - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s] %d/%d", bar, completed, total)
}

// FormatConfidence formats a confidence score as a whole percentage.
func FormatConfidence(score float64) string {
	return fmt.Sprintf("%d%%", int(pipeline.ClampScore(score)*100+0.5))
}
