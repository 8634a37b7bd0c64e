// Package viz renders catalog fixtures and uncertainty sets for the terminal.
//
//   - [Fixture]: model summary plus every set of a fixture
//   - [Zonotope]: center, generator matrix and interval hull of one set
//   - [Lifted]: shape and leading generators of a lifted noise trajectory
//
// Styling uses lipgloss; colors are dropped automatically when the output is
// not a terminal.
package viz
