// ABOUTME: TableModel is the Bubble Tea leaf that binds the virtualization engine
// ABOUTME: Owns the slot-keyed render cache; slot stability avoids re-rendering rows

package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/pi-table-go/internal/config"
	"github.com/mauromedda/pi-table-go/internal/data"
	"github.com/mauromedda/pi-table-go/internal/log"
	"github.com/mauromedda/pi-table-go/internal/schema"
	"github.com/mauromedda/pi-table-go/internal/theme"
	"github.com/mauromedda/pi-table-go/pkg/vtable"
)

// slotRender is the cached rendering of the row currently bound to a slot.
// Lines are unstyled; selection and zebra styling happen at paint time so a
// moving cursor never invalidates the cache.
type slotRender struct {
	row   int
	width int
	lines []string
}

// tableShared holds state that must survive TableModel value copies.
// Bubble Tea copies the model on each Update; pointer fields are shared
// across copies. The engine's MeasureFunc closes over this struct so it
// always sees the current column layout.
type tableShared struct {
	eng    *vtable.Engine
	view   *data.View
	sch    *schema.Schema
	widths []int
	cache  []slotRender
}

// measure returns the height of a row at the current column widths: the
// maximum wrapped line count across wrapping columns, at least one line.
func (sh *tableShared) measure(row int) float64 {
	r := sh.view.Row(row)
	if r == nil {
		return 1
	}
	h := 1
	for i, col := range sh.sch.Columns {
		if !col.Wrap || i >= len(sh.widths) {
			continue
		}
		if lh := cellHeight(r.Cell(col.Key), sh.widths[i]); lh > h {
			h = lh
		}
	}
	return float64(h)
}

// TableModel renders a virtualized table: header line plus a body window
// resolved by the engine. Implements tea.Model with value semantics.
type TableModel struct {
	sh *tableShared // survives value copies

	st       vtable.RenderState
	anchor   vtable.ScrollAnchor
	selected int
	pending  string // accumulated digits for a goto-row jump
	th       *theme.Theme
	cfg      config.Settings

	width  int
	height int // header + body
}

// NewTableModel creates a table over the given view and schema.
func NewTableModel(view *data.View, sch *schema.Schema, th *theme.Theme, cfg config.Settings) TableModel {
	sh := &tableShared{view: view, sch: sch}
	sh.eng = vtable.NewEngine(view.Len(), 1, float64(cfg.EstimateRowHeight), sh.measure)
	return TableModel{
		sh:  sh,
		th:  th,
		cfg: cfg,
		st: vtable.RenderState{
			RowsCount:  view.Len(),
			BufferRows: cfg.BufferRows,
		},
	}
}

// Init returns nil; the table drives no commands.
func (m TableModel) Init() tea.Cmd {
	return nil
}

// Update handles key and mouse messages. Window sizing goes through SetSize
// because the parent decides how much of the screen the table gets.
func (m TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), nil
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m = m.scrollRows(-m.cfg.WheelRows)
		case tea.MouseButtonWheelDown:
			m = m.scrollRows(m.cfg.WheelRows)
		}
		return m, nil
	}
	return m, nil
}

func (m TableModel) handleKey(msg tea.KeyMsg) TableModel {
	key := msg.String()

	// Digits accumulate a count for a goto-row jump ("42g" selects row 42).
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		m.pending += key
		return m
	}
	pending := m.pending
	m.pending = ""

	switch key {
	case "up", "k":
		m = m.moveSelection(-1)
	case "down", "j":
		m = m.moveSelection(1)
	case "pgup", "b":
		m = m.moveSelection(-m.pageRows())
	case "pgdown", "f", " ":
		m = m.moveSelection(m.pageRows())
	case "home", "g":
		if pending != "" {
			return m.gotoRow(pending)
		}
		m.selected = 0
		m.anchor = vtable.ScrollAnchor{ScrollJumpedY: true}
		m = m.refresh(false)
	case "end", "G":
		if pending != "" {
			return m.gotoRow(pending)
		}
		if n := m.sh.view.Len(); n > 0 {
			m.selected = n - 1
			m.anchor = vtable.AnchorAtLast(n - 1)
			m.anchor.ScrollJumpedY = true
			m = m.refresh(false)
		}
	}
	return m
}

// gotoRow jumps to the given 1-based row number.
func (m TableModel) gotoRow(count string) TableModel {
	row, err := strconv.Atoi(count)
	n := m.sh.view.Len()
	if err != nil || n == 0 {
		return m
	}
	row-- // 1-based on the keyboard
	if row < 0 {
		row = 0
	}
	if row >= n {
		row = n - 1
	}
	m.selected = row
	m.anchor = vtable.AnchorAt(row, 0)
	m.anchor.ScrollJumpedY = true
	return m.refresh(false)
}

// SetSize lays the table out for a new terminal size. Column widths change,
// so every measured height is stale: the engine is rebound and repainted
// from scratch.
func (m TableModel) SetSize(w, h int) TableModel {
	if w == m.width && h == m.height {
		return m
	}
	m.width = w
	m.height = h
	m.sh.widths = m.sh.sch.Layout(w, 1)

	bodyH := h - 1 // header line
	if bodyH < 0 {
		bodyH = 0
	}
	poolCap := bodyH + 2*m.cfg.BufferRows + m.cfg.PoolSlack
	if poolCap < 1 {
		poolCap = 1
	}
	m.sh.eng.Reset(m.sh.view.Len(), poolCap)
	m.sh.cache = make([]slotRender, poolCap)

	m.st.BodyHeight = float64(bodyH)
	m.st.AvailHeight = float64(bodyH)
	m.st.MaxAvailHeight = float64(bodyH + m.cfg.EstimateRowHeight)
	m.anchor = vtable.AnchorAt(m.st.FirstRowIndex, 0)

	log.Debug("table resize: %dx%d pool=%d", w, h, poolCap)
	return m.refresh(false)
}

// Rebind points the table at a new view (filter change or reload). Slot
// bindings and measured heights do not carry across row sets.
func (m TableModel) Rebind(view *data.View) TableModel {
	m.sh.view = view
	m.sh.eng.Reset(view.Len(), m.sh.eng.Pool().Cap())
	for i := range m.sh.cache {
		m.sh.cache[i] = slotRender{}
	}
	m.st.RowsCount = view.Len()
	m.selected = 0
	m.anchor = vtable.ScrollAnchor{}
	log.Debug("table rebind: %d rows", view.Len())
	return m.refresh(false)
}

// Selected returns the selected view row, or nil when the view is empty.
func (m TableModel) Selected() data.Row {
	return m.sh.view.Row(m.selected)
}

// SelectedIndex returns the selected view row index.
func (m TableModel) SelectedIndex() int {
	return m.selected
}

// ScrollPercent returns the scroll position as 0-100.
func (m TableModel) ScrollPercent() int {
	if m.st.MaxScrollY <= 0 {
		return 100
	}
	return int(m.st.ScrollY / m.st.MaxScrollY * 100)
}

// VisibleRows returns the number of rows in the current view.
func (m TableModel) VisibleRows() int {
	return m.sh.view.Len()
}

func (m TableModel) pageRows() int {
	est := m.cfg.EstimateRowHeight
	if est < 1 {
		est = 1
	}
	p := int(m.st.BodyHeight) / est
	if p < 1 {
		p = 1
	}
	return p
}

func (m TableModel) moveSelection(delta int) TableModel {
	n := m.sh.view.Len()
	if n == 0 {
		return m
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= n {
		m.selected = n - 1
	}
	return m.ensureVisible()
}

// ensureVisible re-anchors so the selection stays inside the viewport:
// above it, the selection becomes the leading row; below it, the trailing
// row pinned to the bottom.
func (m TableModel) ensureVisible() TableModel {
	switch {
	case m.selected < m.st.FirstRowIndex:
		m.anchor = vtable.AnchorAt(m.selected, 0)
	case m.selected > m.lastFullyVisible():
		m.anchor = vtable.AnchorAtLast(m.selected)
	default:
		m.anchor = vtable.AnchorAt(m.st.FirstRowIndex, m.st.FirstRowOffset)
	}
	return m.refresh(true)
}

// lastFullyVisible walks heights from the leading row until the body is
// filled and returns the last row that fits entirely.
func (m TableModel) lastFullyVisible() int {
	hc := m.sh.eng.Heights()
	y := m.st.FirstRowOffset
	row := m.st.FirstRowIndex
	last := row
	for row < m.st.RowsCount {
		h := hc.HeightFor(row)
		if y+h > m.st.BodyHeight {
			break
		}
		last = row
		y += h
		row++
	}
	return last
}

func (m TableModel) scrollRows(delta int) TableModel {
	n := m.sh.view.Len()
	if n == 0 {
		return m
	}
	first := m.st.FirstRowIndex + delta
	if first < 0 {
		first = 0
	}
	if first >= n {
		first = n - 1
	}
	m.anchor = vtable.AnchorAt(first, 0)
	return m.refresh(true)
}

// refresh runs the engine over the current anchor and repaints any slots
// whose binding changed. scrolling selects the incremental offset path.
func (m TableModel) refresh(scrolling bool) TableModel {
	st := m.st
	st.RowsCount = m.sh.view.Len()
	st.Scrolling = scrolling
	m.st = m.sh.eng.Refresh(st, m.anchor)
	m.repaintSlots()
	return m
}

// repaintSlots re-renders only slots whose bound row or width changed since
// the last frame. Stable slots keep their rendered lines untouched; this is
// the payoff of the pool's eviction policy.
func (m TableModel) repaintSlots() {
	for slot, row := range m.st.Rows {
		if slot >= len(m.sh.cache) {
			break
		}
		if row == vtable.SlotEmpty {
			m.sh.cache[slot] = slotRender{}
			continue
		}
		c := m.sh.cache[slot]
		if c.row == row && c.width == m.width && c.lines != nil {
			continue
		}
		m.sh.cache[slot] = slotRender{
			row:   row,
			width: m.width,
			lines: renderRowLines(m.sh.view.Row(row), m.sh.sch, m.sh.widths),
		}
	}
}

// linesFor returns the rendered lines for a row, from the slot cache when
// the row is materialized, else rendered on the fly.
func (m TableModel) linesFor(row int) []string {
	if slot, ok := m.sh.eng.Pool().SlotOf(row); ok && slot < len(m.sh.cache) {
		if c := m.sh.cache[slot]; c.row == row && c.lines != nil {
			return c.lines
		}
	}
	return renderRowLines(m.sh.view.Row(row), m.sh.sch, m.sh.widths)
}
