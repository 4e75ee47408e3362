// Package textcell measures and clips strings in terminal cells, keeping
// grapheme clusters intact. Hosts use it to fit prompt and popup rows into
// a terminal width.
package textcell

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	if s == "" {
		return 0
	}
	return uniseg.StringWidth(s)
}

// Clip returns the longest prefix of s that fits within maxCells terminal
// cells. A grapheme cluster is never split; a wide cluster that would
// straddle the limit is dropped entirely.
func Clip(s string, maxCells int) string {
	if maxCells <= 0 || s == "" {
		return ""
	}

	var b strings.Builder
	used := 0
	state := -1
	rest := s
	for rest != "" {
		cluster, tail, width, nextState := uniseg.FirstGraphemeClusterInString(rest, state)
		if used+width > maxCells {
			break
		}
		b.WriteString(cluster)
		used += width
		rest, state = tail, nextState
	}
	return b.String()
}

// Pad right-pads s with spaces up to cells terminal cells. Strings already
// at or past the target are returned unchanged.
func Pad(s string, cells int) string {
	if gap := cells - Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
