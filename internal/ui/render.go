// ABOUTME: Cell and row rendering: wrapping, truncation, alignment, zebra styling
// ABOUTME: TableModel.View paints the resolved window from the slot cache

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/pi-table-go/internal/data"
	"github.com/mauromedda/pi-table-go/internal/schema"
	"github.com/mauromedda/pi-table-go/pkg/width"
)

const colSep = " "

// cellHeight is the wrapped line count of a cell at the given width.
func cellHeight(s string, w int) int {
	return width.Height(s, w)
}

// cellLines renders a single cell into its column: wrapped or truncated,
// then padded to the column width with the configured alignment.
func cellLines(s string, col schema.Column, w int) []string {
	var lines []string
	if col.Wrap {
		lines = width.Wrap(s, w)
	} else {
		lines = []string{width.Truncate(s, w)}
	}
	for i, ln := range lines {
		if col.Align == schema.AlignRight {
			lines[i] = width.PadLeft(ln, w)
		} else {
			lines[i] = width.Pad(ln, w)
		}
	}
	return lines
}

// renderRowLines renders one logical row across all columns. The result is
// as tall as the tallest cell; shorter cells pad with blanks.
func renderRowLines(r data.Row, sch *schema.Schema, widths []int) []string {
	if r == nil {
		return []string{""}
	}
	cells := make([][]string, len(sch.Columns))
	height := 1
	for i, col := range sch.Columns {
		if i >= len(widths) {
			break
		}
		cells[i] = cellLines(r.Cell(col.Key), col, widths[i])
		if len(cells[i]) > height {
			height = len(cells[i])
		}
	}

	lines := make([]string, height)
	var b strings.Builder
	for ln := 0; ln < height; ln++ {
		b.Reset()
		for i := range cells {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				b.WriteString(colSep)
			}
			if ln < len(cells[i]) {
				b.WriteString(cells[i][ln])
			} else {
				b.WriteString(strings.Repeat(" ", widths[i]))
			}
		}
		lines[ln] = b.String()
	}
	return lines
}

// headerLine renders the column titles padded to the layout widths.
func headerLine(sch *schema.Schema, widths []int) string {
	var b strings.Builder
	for i, col := range sch.Columns {
		if i >= len(widths) {
			break
		}
		if i > 0 {
			b.WriteString(colSep)
		}
		b.WriteString(width.Pad(width.Truncate(col.Title, widths[i]), widths[i]))
	}
	return b.String()
}

// View renders the header plus the visible body window. The leading row may
// start above the fold; its hidden lines are skipped, which is what the
// anchor's negative offset means on screen.
func (m TableModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	out := make([]string, 0, m.height)
	out = append(out, m.th.Header.Render(width.Pad(headerLine(m.sh.sch, m.sh.widths), m.width)))

	remaining := int(m.st.BodyHeight)
	skip := int(-m.st.FirstRowOffset)
	row := m.st.FirstRowIndex

	for remaining > 0 && row < m.st.RowsCount {
		style := m.rowStyle(row)
		lines := m.linesFor(row)
		for i := skip; i < len(lines) && remaining > 0; i++ {
			out = append(out, style.Render(lines[i]))
			remaining--
		}
		skip = 0
		row++
	}
	for ; remaining > 0; remaining-- {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func (m TableModel) rowStyle(row int) lipgloss.Style {
	switch {
	case row == m.selected:
		return m.th.Selected
	case row%2 == 1:
		return m.th.RowAlt
	default:
		return m.th.Row
	}
}
