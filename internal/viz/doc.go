// Package viz renders search steps for the terminal.
//
// The package draws a sequence as a row of cells styled by the current
// step's [search.Mark]:
//
//   - [Renderer]: cells, step details, status, progress and summary panels
//   - [WindowChart]: asciigraph plot of the search window over a trace
//   - Theme selection with 3 built-in color schemes
package viz
