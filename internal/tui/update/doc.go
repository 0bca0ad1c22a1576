// Package update provides message handlers for the TUI Update function.
//
// This package separates message handling from routing, enabling easier
// testing and keeping the main model file small. Each handler operates on
// a Context interface, allowing the TUI Model to implement the required
// methods without circular dependencies.
//
// The handlers in this package process Bubble Tea messages such as:
//   - TickMsg: the single dashboard ticker driving demo run playback
//   - SnapshotLoadedMsg/SnapshotChangedMsg: snapshot file loads and reloads
//   - ErrMsg: error notifications for the status bar
//   - StatusExpiredMsg: transient status message expiry
package update
