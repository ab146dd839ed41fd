// Package viz provides the interactive terminal viewer.
//
// The package implements a mouse-driven TUI using the Bubble Tea framework:
//
//   - [App]: interactive application with a cell canvas and stats panel
//   - Pointer drags on the canvas rotate, pan, zoom, and deform the sphere
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	D - Toggle flat dots / shaded spheres
//	S - Save a PNG snapshot at full output resolution
//	G - Toggle GIF recording
//	T - Cycle color themes
//	R - Reset the sphere
//	? - Show help overlay
//	Q - Quit
//
// # Recording
//
// Sessions can be recorded as GIF animations using the G key. Recordings
// are saved to the current directory.
package viz
