package document

import "strings"

// defaultSeparators is the word-boundary character set used when a caller
// passes an empty separator set.
const defaultSeparators = " "

// FindStartOfPreviousWord returns the rune index, within TextBeforeCursor,
// just after the last space, or 0 when the prefix holds no space.
func (d *Document) FindStartOfPreviousWord() int {
	return d.findWordStart(defaultSeparators)
}

// FindStartOfPreviousWordWithSpace behaves like FindStartOfPreviousWord but
// first skips any run of spaces touching the cursor, so a word with
// trailing spaces is still found.
func (d *Document) FindStartOfPreviousWordWithSpace() int {
	return d.findWordStartIgnoreAdjacent(defaultSeparators)
}

// FindStartOfPreviousWordUntilSeparator is FindStartOfPreviousWord with a
// caller-chosen separator set. An empty set means the space-only policy.
func (d *Document) FindStartOfPreviousWordUntilSeparator(sep string) int {
	if sep == "" {
		sep = defaultSeparators
	}
	return d.findWordStart(sep)
}

// FindStartOfPreviousWordUntilSeparatorIgnoreNextToCursor combines the
// custom separator set with skipping separators adjacent to the cursor.
func (d *Document) FindStartOfPreviousWordUntilSeparatorIgnoreNextToCursor(sep string) int {
	if sep == "" {
		sep = defaultSeparators
	}
	return d.findWordStartIgnoreAdjacent(sep)
}

// FindEndOfCurrentWord returns the rune index, within TextAfterCursor, of
// the next space, or the suffix length when none exists.
func (d *Document) FindEndOfCurrentWord() int {
	return d.findWordEnd(defaultSeparators)
}

// FindEndOfCurrentWordWithSpace behaves like FindEndOfCurrentWord but first
// skips any run of spaces touching the cursor.
func (d *Document) FindEndOfCurrentWordWithSpace() int {
	return d.findWordEndIgnoreAdjacent(defaultSeparators)
}

// FindEndOfCurrentWordUntilSeparator is FindEndOfCurrentWord with a
// caller-chosen separator set. An empty set means the space-only policy.
func (d *Document) FindEndOfCurrentWordUntilSeparator(sep string) int {
	if sep == "" {
		sep = defaultSeparators
	}
	return d.findWordEnd(sep)
}

// FindEndOfCurrentWordUntilSeparatorIgnoreNextToCursor combines the custom
// separator set with skipping separators adjacent to the cursor.
func (d *Document) FindEndOfCurrentWordUntilSeparatorIgnoreNextToCursor(sep string) int {
	if sep == "" {
		sep = defaultSeparators
	}
	return d.findWordEndIgnoreAdjacent(sep)
}

func (d *Document) findWordStart(sep string) int {
	x := d.beforeCursor()
	if i := lastIndexAny(x, sep); i != -1 {
		return i + 1
	}
	return 0
}

func (d *Document) findWordStartIgnoreAdjacent(sep string) int {
	x := d.beforeCursor()
	end := lastIndexNotAny(x, sep)
	if end == -1 {
		return 0
	}
	if i := lastIndexAny(x[:end], sep); i != -1 {
		return i + 1
	}
	return 0
}

func (d *Document) findWordEnd(sep string) int {
	x := d.afterCursor()
	if i := indexAny(x, sep); i != -1 {
		return i
	}
	return len(x)
}

func (d *Document) findWordEndIgnoreAdjacent(sep string) int {
	x := d.afterCursor()
	start := indexNotAny(x, sep)
	if start == -1 {
		return len(x)
	}
	if i := indexAny(x[start:], sep); i != -1 {
		return start + i
	}
	return len(x)
}

// WordBeforeCursor returns the word touching the cursor's left side; empty
// when a space sits immediately before the cursor.
func (d *Document) WordBeforeCursor() string {
	return string(d.beforeCursor()[d.FindStartOfPreviousWord():])
}

// WordBeforeCursorWithSpace returns the word before the cursor including
// any spaces between the word and the cursor.
func (d *Document) WordBeforeCursorWithSpace() string {
	return string(d.beforeCursor()[d.FindStartOfPreviousWordWithSpace():])
}

// WordBeforeCursorUntilSeparator is WordBeforeCursor under a custom
// separator set.
func (d *Document) WordBeforeCursorUntilSeparator(sep string) string {
	return string(d.beforeCursor()[d.FindStartOfPreviousWordUntilSeparator(sep):])
}

// WordBeforeCursorUntilSeparatorIgnoreNextToCursor is
// WordBeforeCursorWithSpace under a custom separator set.
func (d *Document) WordBeforeCursorUntilSeparatorIgnoreNextToCursor(sep string) string {
	return string(d.beforeCursor()[d.FindStartOfPreviousWordUntilSeparatorIgnoreNextToCursor(sep):])
}

// WordAfterCursor returns the word touching the cursor's right side; empty
// when a space sits immediately after the cursor.
func (d *Document) WordAfterCursor() string {
	return string(d.afterCursor()[:d.FindEndOfCurrentWord()])
}

// WordAfterCursorWithSpace returns the word after the cursor including any
// spaces between the cursor and the word.
func (d *Document) WordAfterCursorWithSpace() string {
	return string(d.afterCursor()[:d.FindEndOfCurrentWordWithSpace()])
}

// WordAfterCursorUntilSeparator is WordAfterCursor under a custom
// separator set.
func (d *Document) WordAfterCursorUntilSeparator(sep string) string {
	return string(d.afterCursor()[:d.FindEndOfCurrentWordUntilSeparator(sep)])
}

// WordAfterCursorUntilSeparatorIgnoreNextToCursor is
// WordAfterCursorWithSpace under a custom separator set.
func (d *Document) WordAfterCursorUntilSeparatorIgnoreNextToCursor(sep string) string {
	return string(d.afterCursor()[:d.FindEndOfCurrentWordUntilSeparatorIgnoreNextToCursor(sep)])
}

func lastIndexAny(rs []rune, set string) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if strings.ContainsRune(set, rs[i]) {
			return i
		}
	}
	return -1
}

func lastIndexNotAny(rs []rune, set string) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if !strings.ContainsRune(set, rs[i]) {
			return i
		}
	}
	return -1
}

func indexAny(rs []rune, set string) int {
	for i, r := range rs {
		if strings.ContainsRune(set, r) {
			return i
		}
	}
	return -1
}

func indexNotAny(rs []rune, set string) int {
	for i, r := range rs {
		if !strings.ContainsRune(set, r) {
			return i
		}
	}
	return -1
}
