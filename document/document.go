package document

import "github.com/mattn/go-runewidth"

// Document is an immutable snapshot of the input buffer plus a cursor
// offset. The cursor counts runes before it, never bytes.
type Document struct {
	text    string
	runes   []rune
	cursor  int
	lastKey string
}

// Option configures optional snapshot fields at construction time.
type Option func(*Document)

// WithLastKey records the opaque key token the host's key-capture layer saw
// last. The document attaches no meaning to it.
func WithLastKey(key string) Option {
	return func(d *Document) { d.lastKey = key }
}

// New builds a snapshot for text with the cursor clamped into
// [0, rune length of text].
func New(text string, cursor int, opts ...Option) *Document {
	d := &Document{
		text:  text,
		runes: []rune(text),
	}
	d.cursor = clampInt(cursor, 0, len(d.runes))
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Document) Text() string { return d.text }

// CursorPosition returns the rune offset of the cursor.
func (d *Document) CursorPosition() int { return d.cursor }

// LastKeyStroke returns the token set via WithLastKey, or "".
func (d *Document) LastKeyStroke() string { return d.lastKey }

// DisplayCursorPosition returns the terminal column of the cursor: the sum
// of the cell widths of every rune before it. Wide glyphs count 2,
// combining and other zero-width runes count 0.
func (d *Document) DisplayCursorPosition() int {
	width := 0
	for _, r := range d.runes[:d.cursor] {
		width += runewidth.RuneWidth(r)
	}
	return width
}

// CharRelativeToCursor returns the rune offset positions from the cursor:
// offset 1 is the rune to the cursor's right, offset 0 the rune to its
// left. The second result is false when the position is out of range.
func (d *Document) CharRelativeToCursor(offset int) (rune, bool) {
	i := d.cursor + offset - 1
	if i < 0 || i >= len(d.runes) {
		return 0, false
	}
	return d.runes[i], true
}

// TextBeforeCursor returns the buffer prefix ending at the cursor.
func (d *Document) TextBeforeCursor() string {
	return string(d.runes[:d.cursor])
}

// TextAfterCursor returns the buffer suffix starting at the cursor.
func (d *Document) TextAfterCursor() string {
	return string(d.runes[d.cursor:])
}

func (d *Document) beforeCursor() []rune { return d.runes[:d.cursor] }
func (d *Document) afterCursor() []rune  { return d.runes[d.cursor:] }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
