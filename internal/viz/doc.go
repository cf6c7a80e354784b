// Package viz provides an interactive terminal view of the reactor.
//
// The [Model] is a Bubble Tea program: the three operating inputs are tuned
// from the keyboard and the axial profile is re-integrated on every change,
// with temperature and concentration drawn as ASCII charts.
//
// # Key Bindings
//
//	Tab/Shift+Tab - Select input
//	Up/Down       - Adjust selected input by one step
//	Right/Left    - Adjust by ten steps
//	R             - Reset to the starting operating point
//	T             - Cycle color themes
//	?             - Show help overlay
//	Q             - Quit
package viz
