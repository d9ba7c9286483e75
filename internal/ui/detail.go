// ABOUTME: DetailModel is the full-row overlay: every cell at full width
// ABOUTME: Markdown-flagged columns render through glamour; the rest wrap plain

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/pi-table-go/internal/data"
	"github.com/mauromedda/pi-table-go/internal/schema"
	"github.com/mauromedda/pi-table-go/internal/theme"
	"github.com/mauromedda/pi-table-go/pkg/width"
)

// DetailClosedMsg signals the detail overlay was dismissed.
type DetailClosedMsg struct{}

// DetailModel shows one row in full, one section per column. Implements
// tea.Model with value semantics; the markdown cache is shared by pointer.
type DetailModel struct {
	row    data.Row
	index  int
	sch    *schema.Schema
	th     *theme.Theme
	md     *MarkdownRenderer
	width  int
	height int
	scroll int
}

// NewDetailModel creates a detail overlay for the given row.
func NewDetailModel(row data.Row, index int, sch *schema.Schema, th *theme.Theme, md *MarkdownRenderer) DetailModel {
	return DetailModel{row: row, index: index, sch: sch, th: th, md: md}
}

// Init returns nil; no commands needed for a leaf model.
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles dismissal and scrolling keys.
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return m, func() tea.Msg { return DetailClosedMsg{} }
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			m.scroll++
		}
	}
	return m, nil
}

// SetSize sets the overlay dimensions.
func (m DetailModel) SetSize(w, h int) DetailModel {
	m.width = w
	m.height = h
	return m
}

// View renders the row sections clipped to the overlay height.
func (m DetailModel) View() string {
	if m.row == nil {
		return m.th.Muted.Render("no row selected")
	}

	contentW := m.width - 2
	if contentW < 10 {
		contentW = 10
	}

	var lines []string
	for _, col := range m.sch.Columns {
		lines = append(lines, m.th.Accent.Render(col.Title))
		cell := m.row.Cell(col.Key)
		if cell == "" {
			lines = append(lines, m.th.Muted.Render("(empty)"), "")
			continue
		}
		if col.Markdown {
			rendered := m.md.Render(cell, contentW)
			lines = append(lines, strings.Split(rendered, "\n")...)
		} else {
			lines = append(lines, width.Wrap(cell, contentW)...)
		}
		lines = append(lines, "")
	}

	// Clip to height, honoring the scroll offset.
	maxScroll := len(lines) - m.height
	if maxScroll < 0 {
		maxScroll = 0
	}
	off := m.scroll
	if off > maxScroll {
		off = maxScroll
	}
	end := off + m.height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[off:end], "\n")
}
