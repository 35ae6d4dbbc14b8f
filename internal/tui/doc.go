// Package tui is the interactive visualizer: a catalog menu and a
// playback screen over one search trace.
//
// # Key Bindings
//
// On the catalog, / searches and C cycles the category filter. In the
// visualizer:
//
//	Space - Play/Pause
//	R     - Reset playback
//	T     - Edit target
//	S     - Edit sequence
//	Tab   - Switch algorithm
//	N     - Next theme
//	Esc   - Back to the catalog
//	Q     - Quit
//
// Editing the target or sequence regenerates the trace and returns
// playback to Idle.
package tui
