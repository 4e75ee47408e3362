// Command inline-demo is a minimal interactive host for the inline core: a
// single input line with prefix completion, selection cycling, and a
// two-column suggestion popup. The terminal plumbing lives entirely here;
// the library only answers queries over immutable snapshots.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inline/completion"
	"github.com/iw2rmb/inline/document"
	"github.com/iw2rmb/inline/internal/textcell"
)

const (
	popupWindowSize = 6
	popupMaxWidth   = 56
)

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Accept     key.Binding
	Dismiss    key.Binding
	DeleteWord key.Binding
	LineStart  key.Binding
	LineEnd    key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next suggestion")),
		Prev:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous suggestion")),
		Accept:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Dismiss:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		DeleteWord: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "delete word")),
		LineStart:  key.NewBinding(key.WithKeys("ctrl+a", "home"), key.WithHelp("ctrl+a", "line start")),
		LineEnd:    key.NewBinding(key.WithKeys("ctrl+e", "end"), key.WithHelp("ctrl+e", "line end")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	rowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("45"))
	statusStyle   = lipgloss.NewStyle().Faint(true)
	acceptedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func demoCompleter(input string) []completion.Suggestion {
	all := []completion.Suggestion{
		completion.NewSuggestion("apply", "Apply a configuration to a resource by file name"),
		completion.NewSuggestion("attach", "Attach to a running container"),
		completion.NewSuggestion("describe", "Show details of a specific resource"),
		completion.NewSuggestion("delete", "Delete resources by file names or names"),
		completion.NewSuggestion("diff", "Diff the live version against a would-be applied version"),
		completion.NewSuggestion("edit", "Edit a resource on the server"),
		completion.NewSuggestion("exec", "Execute a command in a container"),
		completion.NewSuggestion("explain", "Get documentation for a resource"),
		completion.NewSuggestion("expose", "Expose a resource as a new service"),
		completion.NewSuggestion("get", "Display one or many resources"),
		completion.NewSuggestion("logs", "Print the logs for a container"),
		completion.NewSuggestion("rollout", "Manage the rollout of a resource"),
		completion.NewSuggestion("scale", "Set a new size for a deployment"),
	}
	if input == "" {
		return all
	}
	out := make([]completion.Suggestion, 0, len(all))
	for _, s := range all {
		if strings.HasPrefix(s.Label, input) {
			out = append(out, s)
		}
	}
	return out
}

type model struct {
	runes    []rune
	cursor   int
	lastKey  string
	session  *completion.Session
	keys     keyMap
	width    int
	accepted []string
}

func newModel() model {
	m := model{
		session: completion.NewSession(demoCompleter, popupWindowSize),
		keys:    defaultKeyMap(),
		width:   80,
	}
	m.session.UpdateCandidates("")
	return m
}

// doc projects the mutable host state into an immutable snapshot; every
// library query goes through it.
func (m *model) doc() *document.Document {
	return document.New(string(m.runes), m.cursor, document.WithLastKey(m.lastKey))
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.lastKey = msg.String()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.session.Next()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.session.Previous()
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.session.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Accept):
		if s, ok := m.session.Selected(); ok {
			m.acceptSelected(s)
			m.session.Reset()
			m.refreshCandidates()
			return m, nil
		}
		if len(m.runes) > 0 {
			m.accepted = append(m.accepted, string(m.runes))
			m.runes = nil
			m.cursor = 0
			m.refreshCandidates()
		}
		return m, nil

	case key.Matches(msg, m.keys.DeleteWord):
		start := m.doc().FindStartOfPreviousWordWithSpace()
		m.runes = append(m.runes[:start], m.runes[m.cursor:]...)
		m.cursor = start
		m.refreshCandidates()
		return m, nil

	case key.Matches(msg, m.keys.LineStart):
		m.cursor += m.doc().CursorLeftPosition(len(m.runes))
		m.refreshCandidates()
		return m, nil

	case key.Matches(msg, m.keys.LineEnd):
		m.cursor += m.doc().CursorRightPosition(len(m.runes))
		m.refreshCandidates()
		return m, nil
	}

	switch msg.Type {
	case tea.KeyLeft:
		m.cursor += m.doc().CursorLeftPosition(1)
		m.refreshCandidates()
	case tea.KeyRight:
		m.cursor += m.doc().CursorRightPosition(1)
		m.refreshCandidates()
	case tea.KeyBackspace:
		if m.cursor > 0 {
			m.runes = append(m.runes[:m.cursor-1], m.runes[m.cursor:]...)
			m.cursor--
		}
		m.refreshCandidates()
	case tea.KeySpace:
		m.insert([]rune{' '})
	case tea.KeyRunes:
		m.insert(msg.Runes)
	}
	return m, nil
}

func (m *model) insert(rs []rune) {
	next := make([]rune, 0, len(m.runes)+len(rs))
	next = append(next, m.runes[:m.cursor]...)
	next = append(next, rs...)
	next = append(next, m.runes[m.cursor:]...)
	m.runes = next
	m.cursor += len(rs)
	m.refreshCandidates()
}

func (m *model) refreshCandidates() {
	m.session.UpdateCandidates(m.doc().WordBeforeCursor())
}

// acceptSelected replaces the word before the cursor with the chosen label.
func (m *model) acceptSelected(s completion.Suggestion) {
	start := m.doc().FindStartOfPreviousWordWithSpace()
	label := []rune(s.Label)
	next := make([]rune, 0, start+len(label)+len(m.runes)-m.cursor)
	next = append(next, m.runes[:start]...)
	next = append(next, label...)
	next = append(next, m.runes[m.cursor:]...)
	m.runes = next
	m.cursor = start + len(label)
}

func (m model) View() string {
	var b strings.Builder

	for _, line := range m.accepted {
		b.WriteString(acceptedStyle.Render("· " + line))
		b.WriteByte('\n')
	}

	d := m.doc()
	prompt := promptStyle.Render("❯ ")
	before := d.TextBeforeCursor()
	after := d.TextAfterCursor()
	cursorCell := " "
	if r, ok := d.CharRelativeToCursor(1); ok {
		cursorCell = string(r)
		after = string([]rune(after)[1:])
	}
	line := prompt + before + cursorStyle.Render(cursorCell) + after
	b.WriteString(line)
	b.WriteByte('\n')

	if rows, width := m.session.FormatVisible(m.popupBudget()); width > 0 {
		selectedRow := m.session.SelectedIndex() - m.session.ScrollOffset()
		for i, row := range rows {
			cell := textcell.Clip(row.Label+row.Description, m.width-2)
			style := rowStyle
			if i == selectedRow {
				style = selectedStyle
			}
			b.WriteString("  " + style.Render(cell))
			b.WriteByte('\n')
		}
	}

	row, col := d.TranslateIndexToPosition(d.CursorPosition())
	status := fmt.Sprintf("row %d col %d · display col %d · last key %q · tab/shift+tab cycle · ctrl+c quits",
		row, col, d.DisplayCursorPosition(), d.LastKeyStroke())
	b.WriteString(statusStyle.Render(textcell.Clip(status, m.width)))
	return b.String()
}

func (m model) popupBudget() int {
	budget := m.width - 4
	if budget > popupMaxWidth {
		budget = popupMaxWidth
	}
	return budget
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "inline-demo:", err)
		os.Exit(1)
	}
}
