package completion

// Suggestion is one completion candidate: a label to insert and an optional
// human-readable description.
type Suggestion struct {
	Label       string
	Description string
}

// NewSuggestion builds a candidate with a label and description.
func NewSuggestion(label, description string) Suggestion {
	return Suggestion{Label: label, Description: description}
}

// LabelOnly builds a candidate without a description.
func LabelOnly(label string) Suggestion {
	return Suggestion{Label: label}
}

// FormattedRow is a display-ready candidate: both cells are already padded
// and truncated to the fixed column widths chosen by FormatSuggestions. It
// carries no reference back to the source Suggestion.
type FormattedRow struct {
	Label       string
	Description string
}

// Completer is the external completion source: a synchronous function from
// the current input context to ranked candidates. Its result is taken as
// authoritative; an empty result means "no candidates".
type Completer func(input string) []Suggestion
