package completion

import "strings"

const shortenSuffix = "..."

const (
	leftPrefix  = " "
	leftSuffix  = " "
	rightPrefix = " "
	rightSuffix = " "
)

func deleteBreakLineCharacters(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	return strings.ReplaceAll(s, "\r", "")
}

// formatColumn lays the entries out as one fixed-width column under a
// budget of max runes. Every entry is stripped of line breaks, then padded
// to the column width or truncated with the shorten marker. The returned
// width covers prefix, content, and suffix; an infeasible budget or
// all-empty input yields blank cells and width 0.
func formatColumn(entries []string, max int, prefix, suffix string) ([]string, int) {
	out := make([]string, len(entries))
	cells := make([][]rune, len(entries))

	width := 0
	for i, e := range entries {
		cells[i] = []rune(deleteBreakLineCharacters(e))
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}
	if width == 0 {
		return out, 0
	}

	lenPrefix := len([]rune(prefix))
	lenSuffix := len([]rune(suffix))
	lenShorten := len([]rune(shortenSuffix))
	if lenPrefix+lenSuffix+lenShorten >= max {
		return out, 0
	}

	if lenPrefix+width+lenSuffix > max {
		width = max - lenPrefix - lenSuffix
	}

	for i, cell := range cells {
		if len(cell) <= width {
			out[i] = prefix + string(cell) + strings.Repeat(" ", width-len(cell)) + suffix
			continue
		}
		shortened := string(cell[:width-lenShorten]) + shortenSuffix
		if pad := width - len([]rune(shortened)); pad > 0 {
			shortened += strings.Repeat(" ", pad)
		}
		out[i] = prefix + shortened + suffix
	}

	return out, lenPrefix + width + lenSuffix
}

// FormatSuggestions lays the candidates out as two aligned columns — labels
// first against the full budget, descriptions against whatever remains —
// and returns the rows together with the total consumed width. When even
// the label column cannot fit, the result is empty with width 0.
func FormatSuggestions(suggestions []Suggestion, max int) ([]FormattedRow, int) {
	labels := make([]string, len(suggestions))
	descriptions := make([]string, len(suggestions))
	for i, s := range suggestions {
		labels[i] = s.Label
		descriptions[i] = s.Description
	}

	left, leftWidth := formatColumn(labels, max, leftPrefix, leftSuffix)
	if leftWidth == 0 {
		return nil, 0
	}

	right := make([]string, len(descriptions))
	rightWidth := 0
	if max > leftWidth {
		right, rightWidth = formatColumn(descriptions, max-leftWidth, rightPrefix, rightSuffix)
	}

	rows := make([]FormattedRow, len(suggestions))
	for i := range rows {
		rows[i] = FormattedRow{Label: left[i], Description: right[i]}
	}
	return rows, leftWidth + rightWidth
}
