package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault    ThemeName = "default"     // Purple/green dark theme
	ThemeMonokai    ThemeName = "monokai"     // Classic Monokai editor colors
	ThemeDracula    ThemeName = "dracula"     // Dracula theme colors
	ThemeNord       ThemeName = "nord"        // Nord theme - cool blue-gray
	ThemeSolarized  ThemeName = "solarized"   // Solarized Dark by Ethan Schoonover
	ThemeTokyoNight ThemeName = "tokyo-night" // Tokyo Night modern theme
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeSolarized),
		string(ThemeTokyoNight),
	}
}

// IsValidTheme checks if a theme name is valid.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
// All colors should meet WCAG AA contrast requirements (4.5:1 ratio).
type ColorPalette struct {
	// Primary accent color (used for emphasis, active elements)
	Primary lipgloss.Color
	// Secondary accent color (used for secondary emphasis, success states)
	Secondary lipgloss.Color
	// Warning color (used for warnings, attention-needed states)
	Warning lipgloss.Color
	// Error color (used for errors, failures)
	Error lipgloss.Color
	// Muted color (used for de-emphasized text, borders)
	Muted lipgloss.Color
	// Surface color (used for panel backgrounds)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (panel borders)
	Border lipgloss.Color

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

	// Additional accent colors
	Blue   lipgloss.Color
	Yellow lipgloss.Color
	Purple lipgloss.Color
	Pink   lipgloss.Color
	Orange lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500

		StatusPending:    lipgloss.Color("#9CA3AF"), // Gray
		StatusProcessing: lipgloss.Color("#10B981"), // Green
		StatusCompleted:  lipgloss.Color("#A78BFA"), // Purple

		ConfidenceHigh:      lipgloss.Color("#10B981"), // Green
		ConfidenceMedium:    lipgloss.Color("#FBBF24"), // Yellow
		ConfidenceLow:       lipgloss.Color("#FB923C"), // Orange
		ConfidenceUncertain: lipgloss.Color("#9CA3AF"), // Gray

		RiskNone:     lipgloss.Color("#10B981"), // Green
		RiskLow:      lipgloss.Color("#60A5FA"), // Blue
		RiskMedium:   lipgloss.Color("#FBBF24"), // Yellow
		RiskHigh:     lipgloss.Color("#FB923C"), // Orange
		RiskCritical: lipgloss.Color("#F87171"), // Red

		Blue:   lipgloss.Color("#60A5FA"),
		Yellow: lipgloss.Color("#FBBF24"),
		Purple: lipgloss.Color("#A78BFA"),
		Pink:   lipgloss.Color("#F472B6"),
		Orange: lipgloss.Color("#FB923C"),
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#F92672"), // Monokai pink/magenta
		Secondary: lipgloss.Color("#A6E22E"), // Monokai green
		Warning:   lipgloss.Color("#E6DB74"), // Monokai yellow
		Error:     lipgloss.Color("#F92672"), // Monokai magenta
		Muted:     lipgloss.Color("#75715E"), // Monokai comment gray
		Surface:   lipgloss.Color("#272822"), // Monokai background
		Text:      lipgloss.Color("#F8F8F2"), // Monokai foreground
		Border:    lipgloss.Color("#49483E"), // Monokai selection

		StatusPending:    lipgloss.Color("#75715E"), // Comment gray
		StatusProcessing: lipgloss.Color("#A6E22E"), // Green
		StatusCompleted:  lipgloss.Color("#AE81FF"), // Purple

		ConfidenceHigh:      lipgloss.Color("#A6E22E"), // Green
		ConfidenceMedium:    lipgloss.Color("#E6DB74"), // Yellow
		ConfidenceLow:       lipgloss.Color("#FD971F"), // Orange
		ConfidenceUncertain: lipgloss.Color("#75715E"), // Gray

		RiskNone:     lipgloss.Color("#A6E22E"), // Green
		RiskLow:      lipgloss.Color("#66D9EF"), // Cyan
		RiskMedium:   lipgloss.Color("#E6DB74"), // Yellow
		RiskHigh:     lipgloss.Color("#FD971F"), // Orange
		RiskCritical: lipgloss.Color("#F92672"), // Magenta

		Blue:   lipgloss.Color("#66D9EF"),
		Yellow: lipgloss.Color("#E6DB74"),
		Purple: lipgloss.Color("#AE81FF"),
		Pink:   lipgloss.Color("#F92672"),
		Orange: lipgloss.Color("#FD971F"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Warning:   lipgloss.Color("#F1FA8C"), // Dracula yellow
		Error:     lipgloss.Color("#FF5555"), // Dracula red
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Surface:   lipgloss.Color("#282A36"), // Dracula background
		Text:      lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:    lipgloss.Color("#44475A"), // Dracula current line

		StatusPending:    lipgloss.Color("#6272A4"), // Comment blue
		StatusProcessing: lipgloss.Color("#50FA7B"), // Green
		StatusCompleted:  lipgloss.Color("#BD93F9"), // Purple

		ConfidenceHigh:      lipgloss.Color("#50FA7B"), // Green
		ConfidenceMedium:    lipgloss.Color("#F1FA8C"), // Yellow
		ConfidenceLow:       lipgloss.Color("#FFB86C"), // Orange
		ConfidenceUncertain: lipgloss.Color("#6272A4"), // Gray

		RiskNone:     lipgloss.Color("#50FA7B"), // Green
		RiskLow:      lipgloss.Color("#8BE9FD"), // Cyan
		RiskMedium:   lipgloss.Color("#F1FA8C"), // Yellow
		RiskHigh:     lipgloss.Color("#FFB86C"), // Orange
		RiskCritical: lipgloss.Color("#FF5555"), // Red

		Blue:   lipgloss.Color("#8BE9FD"),
		Yellow: lipgloss.Color("#F1FA8C"),
		Purple: lipgloss.Color("#BD93F9"),
		Pink:   lipgloss.Color("#FF79C6"),
		Orange: lipgloss.Color("#FFB86C"),
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost cyan
		Secondary: lipgloss.Color("#A3BE8C"), // Nord green
		Warning:   lipgloss.Color("#EBCB8B"), // Nord yellow
		Error:     lipgloss.Color("#BF616A"), // Nord red
		Muted:     lipgloss.Color("#4C566A"), // Nord polar night
		Surface:   lipgloss.Color("#2E3440"), // Nord darkest
		Text:      lipgloss.Color("#ECEFF4"), // Nord snow storm
		Border:    lipgloss.Color("#3B4252"), // Nord polar night mid

		StatusPending:    lipgloss.Color("#4C566A"), // Polar night
		StatusProcessing: lipgloss.Color("#A3BE8C"), // Green
		StatusCompleted:  lipgloss.Color("#B48EAD"), // Purple

		ConfidenceHigh:      lipgloss.Color("#A3BE8C"), // Green
		ConfidenceMedium:    lipgloss.Color("#EBCB8B"), // Yellow
		ConfidenceLow:       lipgloss.Color("#D08770"), // Orange
		ConfidenceUncertain: lipgloss.Color("#4C566A"), // Gray

		RiskNone:     lipgloss.Color("#A3BE8C"), // Green
		RiskLow:      lipgloss.Color("#81A1C1"), // Blue
		RiskMedium:   lipgloss.Color("#EBCB8B"), // Yellow
		RiskHigh:     lipgloss.Color("#D08770"), // Orange
		RiskCritical: lipgloss.Color("#BF616A"), // Red

		Blue:   lipgloss.Color("#81A1C1"),
		Yellow: lipgloss.Color("#EBCB8B"),
		Purple: lipgloss.Color("#B48EAD"),
		Pink:   lipgloss.Color("#B48EAD"),
		Orange: lipgloss.Color("#D08770"),
	}
}

// SolarizedPalette returns the Solarized Dark theme palette.
func SolarizedPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#268BD2"), // Solarized blue
		Secondary: lipgloss.Color("#859900"), // Solarized green
		Warning:   lipgloss.Color("#B58900"), // Solarized yellow
		Error:     lipgloss.Color("#DC322F"), // Solarized red
		Muted:     lipgloss.Color("#586E75"), // Solarized base01
		Surface:   lipgloss.Color("#002B36"), // Solarized base03
		Text:      lipgloss.Color("#839496"), // Solarized base0
		Border:    lipgloss.Color("#073642"), // Solarized base02

		StatusPending:    lipgloss.Color("#586E75"), // Base01
		StatusProcessing: lipgloss.Color("#859900"), // Green
		StatusCompleted:  lipgloss.Color("#6C71C4"), // Violet

		ConfidenceHigh:      lipgloss.Color("#859900"), // Green
		ConfidenceMedium:    lipgloss.Color("#B58900"), // Yellow
		ConfidenceLow:       lipgloss.Color("#CB4B16"), // Orange
		ConfidenceUncertain: lipgloss.Color("#586E75"), // Gray

		RiskNone:     lipgloss.Color("#859900"), // Green
		RiskLow:      lipgloss.Color("#2AA198"), // Cyan
		RiskMedium:   lipgloss.Color("#B58900"), // Yellow
		RiskHigh:     lipgloss.Color("#CB4B16"), // Orange
		RiskCritical: lipgloss.Color("#DC322F"), // Red

		Blue:   lipgloss.Color("#268BD2"),
		Yellow: lipgloss.Color("#B58900"),
		Purple: lipgloss.Color("#6C71C4"),
		Pink:   lipgloss.Color("#D33682"),
		Orange: lipgloss.Color("#CB4B16"),
	}
}

// TokyoNightPalette returns the Tokyo Night theme palette.
func TokyoNightPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#7AA2F7"), // Tokyo Night blue
		Secondary: lipgloss.Color("#9ECE6A"), // Tokyo Night green
		Warning:   lipgloss.Color("#E0AF68"), // Tokyo Night yellow
		Error:     lipgloss.Color("#F7768E"), // Tokyo Night red
		Muted:     lipgloss.Color("#565F89"), // Tokyo Night comment
		Surface:   lipgloss.Color("#1A1B26"), // Tokyo Night background
		Text:      lipgloss.Color("#C0CAF5"), // Tokyo Night foreground
		Border:    lipgloss.Color("#292E42"), // Tokyo Night highlight

		StatusPending:    lipgloss.Color("#565F89"), // Comment blue
		StatusProcessing: lipgloss.Color("#9ECE6A"), // Green
		StatusCompleted:  lipgloss.Color("#BB9AF7"), // Purple

		ConfidenceHigh:      lipgloss.Color("#9ECE6A"), // Green
		ConfidenceMedium:    lipgloss.Color("#E0AF68"), // Yellow
		ConfidenceLow:       lipgloss.Color("#FF9E64"), // Orange
		ConfidenceUncertain: lipgloss.Color("#565F89"), // Gray

		RiskNone:     lipgloss.Color("#9ECE6A"), // Green
		RiskLow:      lipgloss.Color("#7DCFFF"), // Cyan
		RiskMedium:   lipgloss.Color("#E0AF68"), // Yellow
		RiskHigh:     lipgloss.Color("#FF9E64"), // Orange
		RiskCritical: lipgloss.Color("#F7768E"), // Red

		Blue:   lipgloss.Color("#7AA2F7"),
		Yellow: lipgloss.Color("#E0AF68"),
		Purple: lipgloss.Color("#BB9AF7"),
		Pink:   lipgloss.Color("#FF007C"),
		Orange: lipgloss.Color("#FF9E64"),
	}
}

// GetPalette returns the palette for the named theme. Unknown names fall
// back to the default palette.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeSolarized:
		return SolarizedPalette()
	case ThemeTokyoNight:
		return TokyoNightPalette()
	default:
		return DefaultPalette()
	}
}
