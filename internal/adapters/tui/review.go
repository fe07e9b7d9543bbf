package tui

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dircompare/internal/adapters/editor"
	"dircompare/internal/adapters/tui/styles"
	"dircompare/internal/application"
)

// chrome is the number of lines used around the list
const chrome = 8

// ReviewKeyMap defines key bindings for the review view
type ReviewKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Yank      key.Binding
	YankAll   key.Binding
	Open      key.Binding
	Proceed   key.Binding
	Abort     key.Binding
}

// DefaultReviewKeys returns the default review key bindings
var DefaultReviewKeys = ReviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "prev page"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "next page"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle all"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	YankAll: key.NewBinding(
		key.WithKeys("Y"),
		key.WithHelp("Y", "copy selected"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open source"),
	),
	Proceed: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "proceed"),
	),
	Abort: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "abort"),
	),
}

// ReviewModel lets the operator pick which missing files are reported
// and copied. Every file starts selected.
type ReviewModel struct {
	width      int
	height     int
	message    string
	messageErr bool

	header  string
	items   []application.MissingFile
	skipped map[int]bool
	pager   *Paginator
	keys    ReviewKeyMap
	clip    func(string) error
	open    func(string) (*exec.Cmd, error)

	done    bool
	aborted bool
}

// NewReviewModel creates a review model over items
func NewReviewModel(items []application.MissingFile, header string) *ReviewModel {
	pager := NewPaginator(20)
	pager.SetTotal(len(items))
	return &ReviewModel{
		header:  header,
		items:   items,
		skipped: make(map[int]bool),
		pager:   pager,
		keys:    DefaultReviewKeys,
		clip:    clipboard.WriteAll,
		open:    editor.NewOpener().Command,
	}
}

// Init initializes the review view
func (m *ReviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the review view
func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pager.SetPageSize(msg.Height - chrome)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case editorFinishedMsg:
		if msg.err != nil {
			m.message = fmt.Sprintf("Editor failed: %v", msg.err)
			m.messageErr = true
		}
		return m, nil
	}

	return m, nil
}

func (m *ReviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Proceed):
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.pager.CursorUp()

	case key.Matches(msg, m.keys.Down):
		m.pager.CursorDown()

	case key.Matches(msg, m.keys.PageUp):
		m.pager.PrevPage()

	case key.Matches(msg, m.keys.PageDown):
		m.pager.NextPage()

	case key.Matches(msg, m.keys.Toggle):
		if len(m.items) > 0 {
			i := m.pager.Cursor()
			m.skipped[i] = !m.skipped[i]
		}

	case key.Matches(msg, m.keys.ToggleAll):
		skip := len(m.Selected()) > 0
		for i := range m.items {
			m.skipped[i] = skip
		}

	case key.Matches(msg, m.keys.Yank):
		if len(m.items) > 0 {
			m.yank(m.items[m.pager.Cursor()].Rel, "Copied path to clipboard")
		}

	case key.Matches(msg, m.keys.YankAll):
		selected := m.Selected()
		rels := make([]string, len(selected))
		for i, s := range selected {
			rels[i] = s.Rel
		}
		m.yank(strings.Join(rels, "\n"), fmt.Sprintf("Copied %d paths to clipboard", len(rels)))

	case key.Matches(msg, m.keys.Open):
		if len(m.items) > 0 {
			return m, m.openEditor(m.items[m.pager.Cursor()].Source)
		}
	}

	return m, nil
}

type editorFinishedMsg struct{ err error }

func (m *ReviewModel) openEditor(path string) tea.Cmd {
	cmd, err := m.open(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (m *ReviewModel) yank(text, success string) {
	if err := m.clip(text); err != nil {
		m.message = fmt.Sprintf("Clipboard unavailable: %v", err)
		m.messageErr = true
		return
	}
	m.message = success
	m.messageErr = false
}

// Selected returns the selected files in their original order
func (m *ReviewModel) Selected() []application.MissingFile {
	var out []application.MissingFile
	for i, item := range m.items {
		if !m.skipped[i] {
			out = append(out, item)
		}
	}
	return out
}

// Aborted reports whether the operator left without proceeding
func (m *ReviewModel) Aborted() bool {
	return m.aborted || !m.done
}

// View renders the review view
func (m *ReviewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("%d missing files", len(m.items))))
	b.WriteString("\n")
	if m.header != "" {
		b.WriteString(styles.Subtitle.Render(m.header))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.StatusBar.Render(fmt.Sprintf("%d selected • page %d/%d",
		len(m.Selected()), m.pager.CurrentPage(), m.pager.TotalPages())))
	b.WriteString("\n")

	if m.message != "" {
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	return styles.App.Render(b.String())
}

func (m *ReviewModel) renderRow(i int) string {
	check := styles.CheckOn
	style := styles.Row
	if m.skipped[i] {
		check = styles.CheckOff
		style = styles.RowSkipped
	}
	if i == m.pager.Cursor() {
		style = styles.RowSelected
	}
	return check + style.Render(m.items[i].Rel)
}

func (m *ReviewModel) renderHelp() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.ToggleAll,
		m.keys.Yank, m.keys.YankAll, m.keys.Open, m.keys.Proceed, m.keys.Abort,
	}
	parts := make([]string, len(bindings))
	for i, kb := range bindings {
		h := kb.Help()
		parts[i] = styles.HelpKey.Render(h.Key) + " " + styles.HelpDesc.Render(h.Desc)
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RunReview shows the review screen on in/out and returns the files the
// operator kept. ok is false when the review was aborted.
func RunReview(items []application.MissingFile, header string, in io.Reader, out io.Writer) (selected []application.MissingFile, ok bool, err error) {
	p := tea.NewProgram(
		NewReviewModel(items, header),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return nil, false, fmt.Errorf("review failed: %w", err)
	}

	m := final.(*ReviewModel)
	if m.Aborted() {
		return nil, false, nil
	}
	return m.Selected(), true, nil
}
