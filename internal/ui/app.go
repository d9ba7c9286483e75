// ABOUTME: Root AppModel wiring table, filter bar, status bar, and detail overlay
// ABOUTME: Handles message routing, overlay lifecycle, filtering, and key dispatch

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/pi-table-go/internal/config"
	"github.com/mauromedda/pi-table-go/internal/data"
	"github.com/mauromedda/pi-table-go/internal/schema"
	"github.com/mauromedda/pi-table-go/internal/theme"
)

// AppDeps provides the external dependencies of the viewer.
type AppDeps struct {
	Source   *data.Source
	Schema   *schema.Schema
	Theme    *theme.Theme
	Settings config.Settings
}

// AppModel is the root Bubble Tea model for the table viewer.
type AppModel struct {
	deps AppDeps

	table  TableModel
	filter FilterModel
	status StatusModel

	// Overlay (nil = no overlay)
	overlay tea.Model

	filterActive bool
	query        string
	md           *MarkdownRenderer

	width, height int
}

// NewAppModel creates an AppModel wired with the given dependencies.
func NewAppModel(deps AppDeps) AppModel {
	view := data.FullView(deps.Source)
	return AppModel{
		deps:   deps,
		table:  NewTableModel(view, deps.Schema, deps.Theme, deps.Settings),
		filter: NewFilterModel(deps.Theme),
		status: NewStatusModel(deps.Theme).
			WithSource(deps.Source.Name, deps.Source.Len()).
			WithVisible(deps.Source.Len()).
			WithTheme(deps.Theme.Name),
		md: NewMarkdownRenderer(),
	}
}

// Init returns nil; the viewer is driven entirely by input events.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// --- Layout ---
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.layout(), nil

	// --- Filter lifecycle (handled by root even while the bar is active) ---
	case FilterChangedMsg:
		m.query = msg.Query
		return m.applyFilter(), nil

	case FilterClosedMsg:
		m.filterActive = false
		if !msg.Keep {
			m.query = ""
			m = m.applyFilter()
		}
		return m.layout(), nil

	// --- Overlay lifecycle ---
	case DetailClosedMsg:
		m.overlay = nil
		return m, nil

	case tea.MouseMsg:
		if m.overlay == nil {
			updated, _ := m.table.Update(msg)
			m.table = updated.(TableModel)
			m.status = m.status.WithScrollPercent(m.table.ScrollPercent())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit works everywhere.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		updated, cmd := m.overlay.Update(msg)
		m.overlay = updated
		return m, cmd
	}

	if m.filterActive {
		updated, cmd := m.filter.Update(msg)
		m.filter = updated.(FilterModel)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.filterActive = true
		return m.layout(), nil

	case "enter":
		if row := m.table.Selected(); row != nil {
			detail := NewDetailModel(row, m.table.SelectedIndex(), m.deps.Schema, m.deps.Theme, m.md)
			m.overlay = detail.SetSize(m.width, m.height-1)
		}
		return m, nil

	case "esc":
		if m.query != "" {
			m.query = ""
			m.filter = NewFilterModel(m.deps.Theme)
			return m.applyFilter(), nil
		}
		return m, nil
	}

	updated, _ := m.table.Update(msg)
	m.table = updated.(TableModel)
	m.status = m.status.WithScrollPercent(m.table.ScrollPercent())
	return m, nil
}

// layout recomputes the vertical split: optional filter line on top, status
// line at the bottom, table in between.
func (m AppModel) layout() AppModel {
	tableH := m.height - 1 // status bar
	if m.filterActive {
		tableH--
	}
	if tableH < 0 {
		tableH = 0
	}
	m.table = m.table.SetSize(m.width, tableH)
	m.filter = m.filter.SetWidth(m.width)
	updated, _ := m.status.Update(tea.WindowSizeMsg{Width: m.width, Height: 1})
	m.status = updated.(StatusModel)
	m.status = m.status.WithScrollPercent(m.table.ScrollPercent())
	return m
}

// applyFilter re-binds the table to the filtered row set. A query change is
// a data change: the engine starts over from estimates.
func (m AppModel) applyFilter() AppModel {
	indices := data.Filter(m.deps.Source, m.query)
	m.table = m.table.Rebind(data.NewView(m.deps.Source, indices))
	m.status = m.status.
		WithVisible(len(indices)).
		WithFilter(m.query).
		WithScrollPercent(m.table.ScrollPercent())
	return m
}

// View renders the full layout, or the overlay when one is active.
func (m AppModel) View() string {
	if m.overlay != nil {
		return lipgloss.JoinVertical(lipgloss.Left, m.overlay.View(), m.status.View())
	}

	var sections []string
	if m.filterActive {
		sections = append(sections, m.filter.View())
	}
	sections = append(sections, m.table.View(), m.status.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
