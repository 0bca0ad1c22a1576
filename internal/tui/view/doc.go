// Package view provides the rendering components for the switchboard TUI.
//
// Each component receives model state through the [DashboardState]
// interface and returns a rendered string. This keeps layout logic out of
// the Bubble Tea model and independently testable.
//
// # Main Components
//
//   - [DashboardView]: application chrome (header, tab row, status bar)
//   - [PipelineView]: one decision card per agent stage
//   - [SidebarView]: run metadata, stage checklist, overall confidence
//   - [HistoryView]: summaries of finished runs
//
// The per-card status shown by [PipelineView] and [SidebarView] comes from
// the pipeline status resolver, not from raw record presence: a stage whose
// agent never wrote a record can still display as completed once the run
// has moved past it.
package view
