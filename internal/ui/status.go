// ABOUTME: StatusModel renders the one-line status bar at the bottom
// ABOUTME: Shows source name, visible/total rows, filter query, scroll percent

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/pi-table-go/internal/theme"
	"github.com/mauromedda/pi-table-go/pkg/width"
)

// StatusModel renders a single status line. Implements tea.Model with value
// semantics.
type StatusModel struct {
	source    string
	visible   int
	total     int
	filter    string
	scrollPct int
	themeName string
	width     int
	th        *theme.Theme
}

// NewStatusModel creates an empty status bar.
func NewStatusModel(th *theme.Theme) StatusModel {
	return StatusModel{th: th, scrollPct: 100}
}

// Init returns nil; no commands needed for a leaf model.
func (m StatusModel) Init() tea.Cmd {
	return nil
}

// Update handles window sizing.
func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
	}
	return m, nil
}

// WithSource returns a StatusModel with the source name and row total set.
func (m StatusModel) WithSource(name string, total int) StatusModel {
	m.source = name
	m.total = total
	return m
}

// WithVisible returns a StatusModel with the visible row count set.
func (m StatusModel) WithVisible(n int) StatusModel {
	m.visible = n
	return m
}

// WithFilter returns a StatusModel with the active filter query set.
func (m StatusModel) WithFilter(q string) StatusModel {
	m.filter = q
	return m
}

// WithScrollPercent returns a StatusModel with the scroll position set.
func (m StatusModel) WithScrollPercent(pct int) StatusModel {
	m.scrollPct = pct
	return m
}

// WithTheme returns a StatusModel with the theme name set.
func (m StatusModel) WithTheme(name string) StatusModel {
	m.themeName = name
	return m
}

// View renders the status line padded to the full width.
func (m StatusModel) View() string {
	left := fmt.Sprintf(" %s  %d/%d rows", m.source, m.visible, m.total)
	if m.filter != "" {
		left += fmt.Sprintf("  /%s", m.filter)
	}
	right := fmt.Sprintf("%d%%  %s ", m.scrollPct, m.themeName)

	gap := m.width - width.Visible(left) - width.Visible(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return m.th.Status.Render(width.Truncate(line, m.width))
}
