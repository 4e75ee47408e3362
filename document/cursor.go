package document

import (
	"strings"
	"unicode"
)

// CursorLeftPosition returns the relative rune offset that moves the cursor
// left by up to count runes without crossing the line start. A negative
// count delegates to CursorRightPosition.
func (d *Document) CursorLeftPosition(count int) int {
	if count < 0 {
		return d.CursorRightPosition(-count)
	}
	if col := d.CursorPositionCol(); col <= count {
		return -col
	}
	return -count
}

// CursorRightPosition returns the relative rune offset that moves the
// cursor right by up to count runes without crossing the line end. A
// negative count delegates to CursorLeftPosition.
func (d *Document) CursorRightPosition(count int) int {
	if count < 0 {
		return d.CursorLeftPosition(-count)
	}
	if rest := len([]rune(d.CurrentLineAfterCursor())); rest <= count {
		return rest
	}
	return count
}

// CursorUpPosition returns the relative rune offset that moves the cursor
// up by count rows. preferredColumn keeps the column stable across short
// lines; pass -1 to use the cursor's current column.
func (d *Document) CursorUpPosition(count, preferredColumn int) int {
	col := preferredColumn
	if col < 0 {
		col = d.CursorPositionCol()
	}
	row := d.CursorPositionRow() - count
	if row < 0 {
		row = 0
	}
	return d.TranslateRowColToIndex(row, col) - d.cursor
}

// CursorDownPosition returns the relative rune offset that moves the cursor
// down by count rows. preferredColumn keeps the column stable across short
// lines; pass -1 to use the cursor's current column.
func (d *Document) CursorDownPosition(count, preferredColumn int) int {
	col := preferredColumn
	if col < 0 {
		col = d.CursorPositionCol()
	}
	return d.TranslateRowColToIndex(d.CursorPositionRow()+count, col) - d.cursor
}

// OnLastLine reports whether the cursor sits on the buffer's last line.
func (d *Document) OnLastLine() bool {
	return d.CursorPositionRow() == d.LineCount()-1
}

// EndOfLinePosition returns the rune count from the cursor to the end of
// the current line.
func (d *Document) EndOfLinePosition() int {
	return len([]rune(d.CurrentLineAfterCursor()))
}

// LeadingWhitespaceInCurrentLine returns the whitespace prefix of the
// current line.
func (d *Document) LeadingWhitespaceInCurrentLine() string {
	line := d.CurrentLine()
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	return line[:len(line)-len(trimmed)]
}
