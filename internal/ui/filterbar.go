// ABOUTME: FilterModel is a one-line fuzzy query input above the table
// ABOUTME: Emits FilterChangedMsg on edits and FilterClosedMsg on escape

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/pi-table-go/internal/theme"
)

// FilterChangedMsg carries the current query after an edit.
type FilterChangedMsg struct{ Query string }

// FilterClosedMsg signals the filter bar was dismissed. Keep reports whether
// the query stays applied (enter) or is cleared (escape).
type FilterClosedMsg struct{ Keep bool }

// FilterModel is a minimal single-line text input for fuzzy queries.
// Implements tea.Model with value semantics.
type FilterModel struct {
	query []rune
	th    *theme.Theme
	width int
}

// NewFilterModel creates an empty filter bar.
func NewFilterModel(th *theme.Theme) FilterModel {
	return FilterModel{th: th}
}

// Init returns nil; no commands needed for a leaf model.
func (m FilterModel) Init() tea.Cmd {
	return nil
}

// Update handles text editing keys while the bar is active.
func (m FilterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEscape:
			m.query = nil
			return m, func() tea.Msg { return FilterClosedMsg{} }

		case tea.KeyEnter:
			return m, func() tea.Msg { return FilterClosedMsg{Keep: true} }

		case tea.KeyBackspace:
			if len(m.query) > 0 {
				m.query = m.query[:len(m.query)-1]
			}
			return m, m.changed()

		case tea.KeyCtrlU:
			m.query = nil
			return m, m.changed()

		case tea.KeyRunes:
			m.query = append(m.query, msg.Runes...)
			return m, m.changed()

		case tea.KeySpace:
			m.query = append(m.query, ' ')
			return m, m.changed()
		}
	}
	return m, nil
}

func (m FilterModel) changed() tea.Cmd {
	q := string(m.query)
	return func() tea.Msg { return FilterChangedMsg{Query: q} }
}

// Query returns the current query text.
func (m FilterModel) Query() string {
	return string(m.query)
}

// SetWidth sets the render width.
func (m FilterModel) SetWidth(w int) FilterModel {
	m.width = w
	return m
}

// View renders the query line with a prompt and cursor block.
func (m FilterModel) View() string {
	var b strings.Builder
	b.WriteString(m.th.Accent.Render("/"))
	b.WriteString(string(m.query))
	b.WriteString(m.th.Accent.Render("█"))
	return b.String()
}
