// Package styles provides lipgloss styles and color themes for the
// terminal dashboard.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple (violet-400)
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red (red-400)
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray-500

	// Additional accent colors for badges and meters
	BlueColor   = lipgloss.Color("#60A5FA")
	YellowColor = lipgloss.Color("#FBBF24")
	PurpleColor = lipgloss.Color("#A78BFA")
	PinkColor   = lipgloss.Color("#F472B6")
	OrangeColor = lipgloss.Color("#FB923C")

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Surface   = lipgloss.NewStyle().Background(SurfaceColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Record status colors
	StatusPending    = lipgloss.Color("#9CA3AF") // Gray
	StatusProcessing = lipgloss.Color("#10B981") // Green
	StatusCompleted  = lipgloss.Color("#A78BFA") // Purple

	// Confidence tier colors
	ConfidenceHigh      = lipgloss.Color("#10B981") // Green
	ConfidenceMedium    = lipgloss.Color("#FBBF24") // Yellow
	ConfidenceLow       = lipgloss.Color("#FB923C") // Orange
	ConfidenceUncertain = lipgloss.Color("#9CA3AF") // Gray

	// Risk tier colors
	RiskNone     = lipgloss.Color("#10B981") // Green
	RiskLow      = lipgloss.Color("#60A5FA") // Blue
	RiskMedium   = lipgloss.Color("#FBBF24") // Yellow
	RiskHigh     = lipgloss.Color("#FB923C") // Orange
	RiskCritical = lipgloss.Color("#F87171") // Red

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Tab styles
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	// Status badge styles
	StatusBadge = lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1)

	// Content area
	ContentBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Agent card styles
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	CardActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	CardTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1).
		PaddingBottom(1)

	// Footer / status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Padding(0, 1)

	// Sidebar styles
	Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 1)

	SidebarTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	SidebarSectionTitle = lipgloss.NewStyle().
				Foreground(MutedColor).
				MarginBottom(0)

	SidebarItem = lipgloss.NewStyle().
			Padding(0, 1).
			MarginBottom(0)

	SidebarItemActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextColor).
				Background(PrimaryColor).
				Padding(0, 1).
				MarginBottom(0)

	StatusDot = lipgloss.NewStyle().
			MarginRight(1)

	// Error message
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Success message
	SuccessMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Warning message
	WarningMsg = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)
)

// StatusColor returns the color for a given record status
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "pending":
		return StatusPending
	case "processing":
		return StatusProcessing
	case "completed":
		return StatusCompleted
	default:
		return MutedColor
	}
}

// StatusIcon returns an icon for a given record status
func StatusIcon(status string) string {
	switch status {
	case "pending":
		return "○"
	case "processing":
		return "⟳"
	case "completed":
		return "✓"
	default:
		return "○"
	}
}

// ConfidenceColor returns the color for a given confidence tier
func ConfidenceColor(tier string) lipgloss.Color {
	switch tier {
	case "high":
		return ConfidenceHigh
	case "medium":
		return ConfidenceMedium
	case "low":
		return ConfidenceLow
	case "uncertain":
		return ConfidenceUncertain
	default:
		return MutedColor
	}
}

// RiskColor returns the color for a given risk tier
func RiskColor(tier string) lipgloss.Color {
	switch tier {
	case "none":
		return RiskNone
	case "low":
		return RiskLow
	case "medium":
		return RiskMedium
	case "high":
		return RiskHigh
	case "critical":
		return RiskCritical
	default:
		return MutedColor
	}
}

// PhaseColor returns the color for a given pipeline phase
func PhaseColor(phase string) lipgloss.Color {
	switch phase {
	case "primary", "supervisor", "escalation":
		return StatusProcessing
	case "complete":
		return StatusCompleted
	default:
		return MutedColor
	}
}
