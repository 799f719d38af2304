// Package viz draws insertion sort frames in the terminal.
//
// The package renders a [frame.Descriptor] as colored bars, one per array
// index, with a fixed four-entry legend:
//
//   - Sorted: bars not involved in the current step
//   - Current Key: the value being inserted
//   - Comparing: the prefix value being shifted
//   - Inserted: the slot the key landed in
//
// [Gallery] is an interactive Bubble Tea model for paging through a whole
// trace.
//
// # Key Bindings
//
//	←/h   - Previous frame
//	→/l   - Next frame
//	g/G   - First/last frame
//	Space - Play/Pause
//	t     - Cycle color themes
//	q     - Quit
//	?     - Show help
package viz
