package completion

import (
	"reflect"
	"testing"
)

func staticCompleter(labels ...string) Completer {
	suggestions := make([]Suggestion, len(labels))
	for i, l := range labels {
		suggestions[i] = LabelOnly(l)
	}
	return func(string) []Suggestion { return suggestions }
}

func sixCandidateSession(windowSize int) *Session {
	s := NewSession(staticCompleter("a", "b", "c", "d", "e", "f"), windowSize)
	s.UpdateCandidates("")
	return s
}

func TestSession_StartsIdle(t *testing.T) {
	s := sixCandidateSession(3)
	if s.Completing() {
		t.Fatalf("new session must be idle")
	}
	if got := s.SelectedIndex(); got != -1 {
		t.Fatalf("selected=%d, want -1", got)
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("idle session returned a selected candidate")
	}
}

func TestSession_PreviousFromIdleWrapsToLast(t *testing.T) {
	s := sixCandidateSession(3)
	s.Previous()

	if got := s.SelectedIndex(); got != 5 {
		t.Fatalf("selected=%d, want 5", got)
	}
	if got := s.scroll; got != 3 {
		t.Fatalf("scroll=%d, want 3", got)
	}
	want := []Suggestion{LabelOnly("d"), LabelOnly("e"), LabelOnly("f")}
	if got := s.VisibleCandidates(); !reflect.DeepEqual(got, want) {
		t.Fatalf("visible=%v, want %v", got, want)
	}
	if sel, ok := s.Selected(); !ok || sel.Label != "f" {
		t.Fatalf("selected=%v ok=%v, want f", sel, ok)
	}
}

func TestSession_NextScrollsOnlyAtBottomEdge(t *testing.T) {
	s := sixCandidateSession(3)

	steps := []struct {
		selected int
		scroll   int
	}{
		{selected: 0, scroll: 0},
		{selected: 1, scroll: 0},
		{selected: 2, scroll: 0},
		{selected: 3, scroll: 1},
		{selected: 4, scroll: 2},
		{selected: 5, scroll: 3},
	}
	for i, want := range steps {
		s.Next()
		if s.selected != want.selected || s.scroll != want.scroll {
			t.Fatalf("after %d next calls: (selected,scroll)=(%d,%d), want (%d,%d)",
				i+1, s.selected, s.scroll, want.selected, want.scroll)
		}
	}

	// One step past the last candidate resets to idle.
	s.Next()
	if s.Completing() {
		t.Fatalf("expected idle after cycling past the last candidate")
	}
	if s.selected != -1 || s.scroll != 0 {
		t.Fatalf("(selected,scroll)=(%d,%d), want (-1,0)", s.selected, s.scroll)
	}
}

func TestSession_PreviousScrollsOnlyAtTopEdge(t *testing.T) {
	s := sixCandidateSession(3)
	for i := 0; i < 6; i++ {
		s.Next()
	}
	// selected 5, scroll 3.

	steps := []struct {
		selected int
		scroll   int
	}{
		{selected: 4, scroll: 3},
		{selected: 3, scroll: 3},
		{selected: 2, scroll: 2},
		{selected: 1, scroll: 1},
		{selected: 0, scroll: 0},
	}
	for i, want := range steps {
		s.Previous()
		if s.selected != want.selected || s.scroll != want.scroll {
			t.Fatalf("after %d previous calls: (selected,scroll)=(%d,%d), want (%d,%d)",
				i+1, s.selected, s.scroll, want.selected, want.scroll)
		}
	}
}

func TestSession_PreviousOnEmptyCandidatesStaysIdle(t *testing.T) {
	s := NewSession(staticCompleter(), 3)
	s.UpdateCandidates("")

	s.Previous()
	if s.Completing() {
		t.Fatalf("expected idle")
	}
	if s.selected != -1 || s.scroll != 0 {
		t.Fatalf("(selected,scroll)=(%d,%d), want (-1,0)", s.selected, s.scroll)
	}
	if got := s.VisibleCandidates(); len(got) != 0 {
		t.Fatalf("visible=%v, want none", got)
	}
}

func TestSession_ResetRefreshesWithEmptyInput(t *testing.T) {
	var inputs []string
	completer := func(input string) []Suggestion {
		inputs = append(inputs, input)
		return []Suggestion{LabelOnly("x")}
	}
	s := NewSession(completer, 3)

	s.UpdateCandidates("quer")
	s.Next()
	s.Reset()

	if s.Completing() {
		t.Fatalf("expected idle after reset")
	}
	if want := []string{"quer", ""}; !reflect.DeepEqual(inputs, want) {
		t.Fatalf("completer inputs=%q, want %q", inputs, want)
	}
}

func TestSession_ShrinkingCandidatesForcesReset(t *testing.T) {
	size := 6
	completer := func(string) []Suggestion {
		out := make([]Suggestion, size)
		for i := range out {
			out[i] = LabelOnly(string(rune('a' + i)))
		}
		return out
	}
	s := NewSession(completer, 3)
	s.UpdateCandidates("")
	for i := 0; i < 6; i++ {
		s.Next()
	}
	if s.selected != 5 {
		t.Fatalf("selected=%d, want 5", s.selected)
	}

	size = 2
	s.UpdateCandidates("sh")
	if s.selected != 5 {
		t.Fatalf("UpdateCandidates must not touch the selection, selected=%d", s.selected)
	}

	s.Next()
	if s.Completing() {
		t.Fatalf("expected reset to idle once the selection fell out of range")
	}
}

func TestSession_DefaultWindowSize(t *testing.T) {
	labels := make([]string, 12)
	for i := range labels {
		labels[i] = string(rune('a' + i))
	}
	s := NewSession(staticCompleter(labels...), 0)
	s.UpdateCandidates("")

	if got := len(s.VisibleCandidates()); got != defaultWindowSize {
		t.Fatalf("visible=%d, want %d", got, defaultWindowSize)
	}
}

func TestSession_WindowLargerThanCandidates(t *testing.T) {
	s := NewSession(staticCompleter("a", "b"), 5)
	s.UpdateCandidates("")

	s.Previous()
	if s.selected != 1 || s.scroll != 0 {
		t.Fatalf("(selected,scroll)=(%d,%d), want (1,0)", s.selected, s.scroll)
	}
	if got := len(s.VisibleCandidates()); got != 2 {
		t.Fatalf("visible=%d, want 2", got)
	}
}

func TestSession_FormatVisible(t *testing.T) {
	s := sixCandidateSession(2)
	s.Next()

	rows, width := s.FormatVisible(40)
	if width != 3 {
		t.Fatalf("width=%d, want 3", width)
	}
	want := []FormattedRow{{Label: " a "}, {Label: " b "}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows=%q, want %q", rows, want)
	}
}
