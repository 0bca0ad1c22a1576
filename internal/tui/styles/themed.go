package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles contains all the lipgloss styles built from a color palette.
// This allows styles to be regenerated when the theme changes.
type ThemedStyles struct {
	// Colors from the palette
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color

	// Additional colors
	BlueColor   lipgloss.Color
	YellowColor lipgloss.Color
	PurpleColor lipgloss.Color
	PinkColor   lipgloss.Color
	OrangeColor lipgloss.Color

	// Record status colors
	StatusPending    lipgloss.Color
	StatusProcessing lipgloss.Color
	StatusCompleted  lipgloss.Color

	// Confidence tier colors
	ConfidenceHigh      lipgloss.Color
	ConfidenceMedium    lipgloss.Color
	ConfidenceLow       lipgloss.Color
	ConfidenceUncertain lipgloss.Color

	// Risk tier colors
	RiskNone     lipgloss.Color
	RiskLow      lipgloss.Color
	RiskMedium   lipgloss.Color
	RiskHigh     lipgloss.Color
	RiskCritical lipgloss.Color

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Surface   lipgloss.Style
	Text      lipgloss.Style

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Tab styles
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Status badge
	StatusBadge lipgloss.Style

	// Content area
	ContentBox lipgloss.Style

	// Agent cards
	Card       lipgloss.Style
	CardActive lipgloss.Style
	CardTitle  lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Header
	Header lipgloss.Style

	// Footer / status bar
	StatusBar lipgloss.Style

	// Sidebar styles
	Sidebar             lipgloss.Style
	SidebarTitle        lipgloss.Style
	SidebarSectionTitle lipgloss.Style
	SidebarItem         lipgloss.Style
	SidebarItemActive   lipgloss.Style
	StatusDot           lipgloss.Style

	// Messages
	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
	WarningMsg lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		// Store colors for direct access
		PrimaryColor:   p.Primary,
		SecondaryColor: p.Secondary,
		WarningColor:   p.Warning,
		ErrorColor:     p.Error,
		MutedColor:     p.Muted,
		SurfaceColor:   p.Surface,
		TextColor:      p.Text,
		BorderColor:    p.Border,

		BlueColor:   p.Blue,
		YellowColor: p.Yellow,
		PurpleColor: p.Purple,
		PinkColor:   p.Pink,
		OrangeColor: p.Orange,

		// Record status colors
		StatusPending:    p.StatusPending,
		StatusProcessing: p.StatusProcessing,
		StatusCompleted:  p.StatusCompleted,

		// Confidence tier colors
		ConfidenceHigh:      p.ConfidenceHigh,
		ConfidenceMedium:    p.ConfidenceMedium,
		ConfidenceLow:       p.ConfidenceLow,
		ConfidenceUncertain: p.ConfidenceUncertain,

		// Risk tier colors
		RiskNone:     p.RiskNone,
		RiskLow:      p.RiskLow,
		RiskMedium:   p.RiskMedium,
		RiskHigh:     p.RiskHigh,
		RiskCritical: p.RiskCritical,
	}

	// Build all the styles
	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Secondary = lipgloss.NewStyle().Foreground(p.Secondary)
	s.Warning = lipgloss.NewStyle().Foreground(p.Warning)
	s.Error = lipgloss.NewStyle().Foreground(p.Error)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Surface = lipgloss.NewStyle().Background(p.Surface)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 2)

	s.TabInactive = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2)

	s.StatusBadge = lipgloss.NewStyle().
		Padding(0, 1).
		MarginRight(1)

	s.ContentBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.CardActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)

	s.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border).
		MarginBottom(1).
		PaddingBottom(1)

	s.StatusBar = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface).
		Padding(0, 1)

	s.Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 1)

	s.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.SidebarSectionTitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginBottom(0)

	s.SidebarItem = lipgloss.NewStyle().
		Padding(0, 1).
		MarginBottom(0)

	s.SidebarItemActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 1).
		MarginBottom(0)

	s.StatusDot = lipgloss.NewStyle().
		MarginRight(1)

	s.ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	s.SuccessMsg = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	s.WarningMsg = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	return s
}

// StatusColor returns the color for a given record status using the themed palette.
func (s *ThemedStyles) StatusColor(status string) lipgloss.Color {
	switch status {
	case "pending":
		return s.StatusPending
	case "processing":
		return s.StatusProcessing
	case "completed":
		return s.StatusCompleted
	default:
		return s.MutedColor
	}
}

// ConfidenceColor returns the color for a confidence tier using the themed palette.
func (s *ThemedStyles) ConfidenceColor(tier string) lipgloss.Color {
	switch tier {
	case "high":
		return s.ConfidenceHigh
	case "medium":
		return s.ConfidenceMedium
	case "low":
		return s.ConfidenceLow
	case "uncertain":
		return s.ConfidenceUncertain
	default:
		return s.MutedColor
	}
}

// RiskColor returns the color for a risk tier using the themed palette.
func (s *ThemedStyles) RiskColor(tier string) lipgloss.Color {
	switch tier {
	case "none":
		return s.RiskNone
	case "low":
		return s.RiskLow
	case "medium":
		return s.RiskMedium
	case "high":
		return s.RiskHigh
	case "critical":
		return s.RiskCritical
	default:
		return s.MutedColor
	}
}

// activeTheme holds the currently active themed styles.
// This is set via SetActiveTheme and provides backwards compatibility
// with code that uses the global style variables.
var activeTheme *ThemedStyles

func init() {
	// Initialize with default theme
	activeTheme = NewThemedStyles(DefaultPalette())
}

// SetActiveTheme updates the active theme to the specified theme name.
// This updates all the global style variables to use the new theme colors.
//
// Note: This function is not thread-safe. It is designed to be called only
// from the Bubble Tea event loop, which runs on a single goroutine.
func SetActiveTheme(name ThemeName) {
	palette := GetPalette(name)
	activeTheme = NewThemedStyles(palette)
	syncGlobalStyles()
}

// GetActiveTheme returns the currently active themed styles.
func GetActiveTheme() *ThemedStyles {
	return activeTheme
}

// syncGlobalStyles updates the global style variables to match the active theme.
// This maintains backwards compatibility with existing code that uses
// the package-level style variables directly.
func syncGlobalStyles() {
	// Update colors
	PrimaryColor = activeTheme.PrimaryColor
	SecondaryColor = activeTheme.SecondaryColor
	WarningColor = activeTheme.WarningColor
	ErrorColor = activeTheme.ErrorColor
	MutedColor = activeTheme.MutedColor
	SurfaceColor = activeTheme.SurfaceColor
	TextColor = activeTheme.TextColor
	BorderColor = activeTheme.BorderColor

	BlueColor = activeTheme.BlueColor
	YellowColor = activeTheme.YellowColor
	PurpleColor = activeTheme.PurpleColor
	PinkColor = activeTheme.PinkColor
	OrangeColor = activeTheme.OrangeColor

	// Update record status colors
	StatusPending = activeTheme.StatusPending
	StatusProcessing = activeTheme.StatusProcessing
	StatusCompleted = activeTheme.StatusCompleted

	// Update confidence tier colors
	ConfidenceHigh = activeTheme.ConfidenceHigh
	ConfidenceMedium = activeTheme.ConfidenceMedium
	ConfidenceLow = activeTheme.ConfidenceLow
	ConfidenceUncertain = activeTheme.ConfidenceUncertain

	// Update risk tier colors
	RiskNone = activeTheme.RiskNone
	RiskLow = activeTheme.RiskLow
	RiskMedium = activeTheme.RiskMedium
	RiskHigh = activeTheme.RiskHigh
	RiskCritical = activeTheme.RiskCritical

	// Update convenience styles
	Primary = activeTheme.Primary
	Secondary = activeTheme.Secondary
	Warning = activeTheme.Warning
	Error = activeTheme.Error
	Muted = activeTheme.Muted
	Surface = activeTheme.Surface
	Text = activeTheme.Text

	// Update base styles
	Title = activeTheme.Title
	Subtitle = activeTheme.Subtitle

	// Update tab styles
	TabActive = activeTheme.TabActive
	TabInactive = activeTheme.TabInactive

	// Update status badge
	StatusBadge = activeTheme.StatusBadge

	// Update content box
	ContentBox = activeTheme.ContentBox

	// Update card styles
	Card = activeTheme.Card
	CardActive = activeTheme.CardActive
	CardTitle = activeTheme.CardTitle

	// Update help styles
	HelpBar = activeTheme.HelpBar
	HelpKey = activeTheme.HelpKey

	// Update header
	Header = activeTheme.Header

	// Update status bar
	StatusBar = activeTheme.StatusBar

	// Update sidebar styles
	Sidebar = activeTheme.Sidebar
	SidebarTitle = activeTheme.SidebarTitle
	SidebarSectionTitle = activeTheme.SidebarSectionTitle
	SidebarItem = activeTheme.SidebarItem
	SidebarItemActive = activeTheme.SidebarItemActive
	StatusDot = activeTheme.StatusDot

	// Update messages
	ErrorMsg = activeTheme.ErrorMsg
	SuccessMsg = activeTheme.SuccessMsg
	WarningMsg = activeTheme.WarningMsg
}
