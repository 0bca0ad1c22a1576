// Package msg defines the message types used by the TUI's Bubbletea event loop.
//
// This package contains all [tea.Msg] types the dashboard can receive, such
// as timer ticks, snapshot load results, and watcher notifications, plus the
// command factories that produce them. Centralizing the types keeps a single
// source of truth for the event system and lets handlers live separately
// from definitions.
package msg
