// Package completion implements the suggestion side of an interactive input
// line: a fixed-width two-column formatter for candidate rows and a
// scrolling-selection session over a pluggable completion source.
//
// The package renders nothing itself; it produces display-ready cells and
// selection state for a host renderer.
package completion
