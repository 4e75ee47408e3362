package document

import (
	"sort"
	"strings"
)

// CurrentLineBeforeCursor returns the current line's text up to the cursor.
func (d *Document) CurrentLineBeforeCursor() string {
	x := d.TextBeforeCursor()
	if i := strings.LastIndexByte(x, '\n'); i != -1 {
		return x[i+1:]
	}
	return x
}

// CurrentLineAfterCursor returns the current line's text from the cursor to
// the next line break or the end of the buffer.
func (d *Document) CurrentLineAfterCursor() string {
	x := d.TextAfterCursor()
	if i := strings.IndexByte(x, '\n'); i != -1 {
		return x[:i]
	}
	return x
}

// CurrentLine returns the whole line under the cursor, without the line
// break.
func (d *Document) CurrentLine() string {
	return d.CurrentLineBeforeCursor() + d.CurrentLineAfterCursor()
}

// Lines splits the buffer on line breaks. A trailing line break yields a
// trailing empty line.
func (d *Document) Lines() []string {
	return strings.Split(d.text, "\n")
}

func (d *Document) LineCount() int {
	return len(d.Lines())
}

// LineStartIndexes returns the rune offset of the first rune of each line.
// The running total appends one synthetic one-past-end entry during
// construction; it is dropped whenever the buffer holds more than one line,
// so lookups on a multi-line buffer see exactly LineCount entries.
func (d *Document) LineStartIndexes() []int {
	lines := d.Lines()
	indexes := make([]int, 1, len(lines)+1)
	pos := 0
	for _, line := range lines {
		pos += len([]rune(line)) + 1
		indexes = append(indexes, pos)
	}
	if len(lines) > 1 {
		indexes = indexes[:len(lines)]
	}
	return indexes
}

// FindLineStartIndex returns the row containing the rune offset together
// with that row's start offset. The row is the rightmost entry of
// LineStartIndexes whose start is <= offset.
func (d *Document) FindLineStartIndex(offset int) (row, rowStart int) {
	indexes := d.LineStartIndexes()
	row = sort.Search(len(indexes), func(i int) bool { return indexes[i] > offset }) - 1
	if row < 0 {
		row = 0
	}
	return row, indexes[row]
}

// CursorPositionRow returns the 0-based row of the cursor.
func (d *Document) CursorPositionRow() int {
	row, _ := d.FindLineStartIndex(d.cursor)
	return row
}

// CursorPositionCol returns the 0-based rune column of the cursor within
// its row.
func (d *Document) CursorPositionCol() int {
	_, start := d.FindLineStartIndex(d.cursor)
	return d.cursor - start
}

// TranslateIndexToPosition maps a rune offset to (row, col), clamping the
// offset into the buffer first.
func (d *Document) TranslateIndexToPosition(index int) (row, col int) {
	index = clampInt(index, 0, len(d.runes))
	row, start := d.FindLineStartIndex(index)
	return row, index - start
}

// TranslateRowColToIndex maps (row, col) to a rune offset. Row is clamped
// to the buffer's rows, col to the row's rune length, and the result to
// [0, rune length of the buffer].
func (d *Document) TranslateRowColToIndex(row, col int) int {
	lines := d.Lines()
	indexes := d.LineStartIndexes()
	row = clampInt(row, 0, len(lines)-1)
	index := indexes[row] + clampInt(col, 0, len([]rune(lines[row])))
	return clampInt(index, 0, len(d.runes))
}
