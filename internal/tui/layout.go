// Package tui provides the terminal dashboard for Switchboard.
// This file contains layout-related constants and dimension calculations.
package tui

// Sidebar dimensions
const (
	// SidebarWidth is the default width of the run sidebar.
	SidebarWidth = 28

	// SidebarMinWidth is the sidebar width used on narrow terminals.
	SidebarMinWidth = 20

	// NarrowTerminalThreshold is the terminal width below which the sidebar
	// shrinks to SidebarMinWidth.
	NarrowTerminalThreshold = 80
)

// Layout offsets - the rows taken by fixed chrome around the main area
const (
	// MainAreaHeightOffset accounts for the header, tab row, status bar,
	// and help bar plus their separating blank lines.
	MainAreaHeightOffset = 7

	// PanelGap is the gap between the sidebar and the content panel.
	PanelGap = 1

	// MainAreaMinHeight keeps the panels renderable on tiny terminals.
	MainAreaMinHeight = 8
)

// EffectiveSidebarWidth returns the sidebar width for a terminal of
// termWidth columns. A configured width wins unless the terminal is
// narrow; zero or tiny configured values fall back to the default.
func EffectiveSidebarWidth(termWidth, configured int) int {
	if termWidth < NarrowTerminalThreshold {
		return SidebarMinWidth
	}
	if configured >= SidebarMinWidth {
		return configured
	}
	return SidebarWidth
}

// MainAreaDimensions returns the dimensions of the sidebar and content
// panels for the given terminal size.
func MainAreaDimensions(termWidth, termHeight, configuredSidebar int) (sidebarWidth, contentWidth, mainHeight int) {
	sidebarWidth = EffectiveSidebarWidth(termWidth, configuredSidebar)
	contentWidth = termWidth - sidebarWidth - PanelGap
	mainHeight = termHeight - MainAreaHeightOffset
	if mainHeight < MainAreaMinHeight {
		mainHeight = MainAreaMinHeight
	}
	return sidebarWidth, contentWidth, mainHeight
}
