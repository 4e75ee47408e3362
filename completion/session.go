package completion

const defaultWindowSize = 8

// Session tracks which candidate is selected as the user cycles through
// completions, scrolling a fixed-size window over the candidate list.
//
// A session is either idle (selected == -1) or completing (selected in
// [0, len(candidates))). It is owned by a single interactive loop and is
// not safe for concurrent use.
type Session struct {
	completer  Completer
	candidates []Suggestion
	selected   int
	scroll     int
	windowSize int
}

// NewSession builds an idle session over the given source. A non-positive
// windowSize falls back to the default.
func NewSession(completer Completer, windowSize int) *Session {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &Session{
		completer:  completer,
		selected:   -1,
		windowSize: windowSize,
	}
}

// UpdateCandidates replaces the candidate list wholesale by querying the
// completion source with the current input context. Selection is left
// untouched; the next transition's normalize step resets it if it fell out
// of range.
func (s *Session) UpdateCandidates(input string) {
	if s.completer == nil {
		s.candidates = nil
		return
	}
	s.candidates = s.completer(input)
}

// effectiveWindowSize is the window actually shown: never larger than the
// candidate list.
func (s *Session) effectiveWindowSize() int {
	if len(s.candidates) < s.windowSize {
		return len(s.candidates)
	}
	return s.windowSize
}

// normalize restores the session invariant after a transition: a selection
// past the end resets to idle, a selection below idle wraps to the last
// candidate with the window on the last page.
func (s *Session) normalize() {
	if s.selected > -1 && s.selected >= len(s.candidates) {
		s.Reset()
	} else if s.selected < -1 {
		s.selected = len(s.candidates) - 1
		s.scroll = len(s.candidates) - s.effectiveWindowSize()
	}
}

// Previous moves the selection up, scrolling only when the selection sits
// at the window's top edge. Moving above the first candidate wraps to the
// last one.
func (s *Session) Previous() {
	if s.scroll == s.selected && s.selected > 0 {
		s.scroll--
	}
	s.selected--
	s.normalize()
}

// Next moves the selection down, scrolling only when the selection sits at
// the window's bottom edge. Moving past the last candidate resets to idle.
func (s *Session) Next() {
	if s.scroll+s.effectiveWindowSize()-1 == s.selected {
		s.scroll++
	}
	s.selected++
	s.normalize()
}

// Reset returns to idle and refreshes the candidates with an empty input
// context.
func (s *Session) Reset() {
	s.selected = -1
	s.scroll = 0
	s.UpdateCandidates("")
}

// Completing reports whether a candidate is currently selected.
func (s *Session) Completing() bool {
	return s.selected != -1
}

// Candidates returns the full candidate list.
func (s *Session) Candidates() []Suggestion {
	return s.candidates
}

// SelectedIndex returns the selected candidate's index, or -1 when idle.
func (s *Session) SelectedIndex() int {
	return s.selected
}

// ScrollOffset returns the index of the first visible candidate. Renderers
// subtract it from SelectedIndex to find the highlighted window row.
func (s *Session) ScrollOffset() int {
	return s.scroll
}

// Selected returns the selected candidate, or false when idle.
func (s *Session) Selected() (Suggestion, bool) {
	if s.selected < 0 || s.selected >= len(s.candidates) {
		return Suggestion{}, false
	}
	return s.candidates[s.selected], true
}

// VisibleCandidates returns the window of candidates eligible for display.
func (s *Session) VisibleCandidates() []Suggestion {
	lo := s.scroll
	if lo < 0 {
		lo = 0
	}
	if lo > len(s.candidates) {
		lo = len(s.candidates)
	}
	hi := lo + s.effectiveWindowSize()
	if hi > len(s.candidates) {
		hi = len(s.candidates)
	}
	return s.candidates[lo:hi]
}

// FormatVisible lays the visible window out as display-ready rows under a
// total width budget of max runes.
func (s *Session) FormatVisible(max int) ([]FormattedRow, int) {
	return FormatSuggestions(s.VisibleCandidates(), max)
}
