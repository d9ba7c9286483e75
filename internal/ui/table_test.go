// ABOUTME: Tests for TableModel: sizing, selection movement, jumps, rebinding
// ABOUTME: Uses a uniform-height source so window positions are exact

package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/pi-table-go/internal/config"
	"github.com/mauromedda/pi-table-go/internal/data"
	"github.com/mauromedda/pi-table-go/internal/schema"
	"github.com/mauromedda/pi-table-go/internal/theme"
)

// Compile-time check: TableModel must satisfy tea.Model.
var _ tea.Model = TableModel{}

func testSource(n int) *data.Source {
	src := &data.Source{Name: "test", Keys: []string{"id", "name"}}
	for i := 0; i < n; i++ {
		src.Rows = append(src.Rows, data.Row{
			"id":   fmt.Sprintf("%04d", i),
			"name": fmt.Sprintf("row-%d", i),
		})
	}
	return src
}

func testTable(t *testing.T, n, w, h int) TableModel {
	t.Helper()
	src := testSource(n)
	m := NewTableModel(data.FullView(src), schema.Derive(src.Keys), theme.Default(), config.Defaults())
	return m.SetSize(w, h)
}

func TestTableModel_ViewShowsHeaderAndFirstRows(t *testing.T) {
	m := testTable(t, 100, 30, 11) // 10 body lines

	v := m.View()
	lines := strings.Split(v, "\n")
	if len(lines) != 11 {
		t.Fatalf("view has %d lines, want 11", len(lines))
	}
	if !strings.Contains(lines[0], "id") {
		t.Errorf("header missing: %q", lines[0])
	}
	if !strings.Contains(lines[1], "0000") {
		t.Errorf("first body line = %q, want row 0", lines[1])
	}
	if !strings.Contains(lines[10], "0009") {
		t.Errorf("last body line = %q, want row 9", lines[10])
	}
}

func TestTableModel_SelectionMovesAndScrolls(t *testing.T) {
	m := testTable(t, 100, 30, 11)

	for i := 0; i < 15; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(TableModel)
	}
	if m.SelectedIndex() != 15 {
		t.Fatalf("selected = %d, want 15", m.SelectedIndex())
	}
	// Selection ran past the 10-row body; row 15 must now be visible.
	if !strings.Contains(m.View(), "0015") {
		t.Errorf("row 15 not visible after scrolling down")
	}
}

func TestTableModel_EndJumpsToLastRow(t *testing.T) {
	m := testTable(t, 100, 30, 11)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = updated.(TableModel)

	if m.SelectedIndex() != 99 {
		t.Fatalf("selected = %d, want 99", m.SelectedIndex())
	}
	if !strings.Contains(m.View(), "0099") {
		t.Errorf("last row not visible after End")
	}
	if got := m.ScrollPercent(); got != 100 {
		t.Errorf("ScrollPercent = %d, want 100", got)
	}
}

func TestTableModel_HomeReturnsToTop(t *testing.T) {
	m := testTable(t, 100, 30, 11)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = updated.(TableModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m = updated.(TableModel)

	if m.SelectedIndex() != 0 {
		t.Fatalf("selected = %d, want 0", m.SelectedIndex())
	}
	if !strings.Contains(m.View(), "0000") {
		t.Errorf("row 0 not visible after Home")
	}
}

func TestTableModel_GotoRowCount(t *testing.T) {
	m := testTable(t, 100, 30, 11)

	// "42g" jumps to row 42 (1-based), selecting index 41.
	for _, key := range []rune{'4', '2', 'g'} {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}})
		m = updated.(TableModel)
	}
	if m.SelectedIndex() != 41 {
		t.Fatalf("selected = %d, want 41", m.SelectedIndex())
	}
	if !strings.Contains(m.View(), "0041") {
		t.Errorf("row 41 not visible after goto")
	}

	// Out-of-range counts clamp to the last row.
	for _, key := range []rune{'9', '9', '9', 'g'} {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}})
		m = updated.(TableModel)
	}
	if m.SelectedIndex() != 99 {
		t.Errorf("selected = %d, want 99 after clamped goto", m.SelectedIndex())
	}
}

func TestTableModel_WheelScrollsWithoutMovingSelection(t *testing.T) {
	m := testTable(t, 100, 30, 11)

	updated, _ := m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m = updated.(TableModel)

	if m.SelectedIndex() != 0 {
		t.Errorf("selection moved on wheel scroll: %d", m.SelectedIndex())
	}
	// Default wheel step is 3 rows.
	v := m.View()
	if !strings.Contains(v, "0003") {
		t.Errorf("row 3 not the leading row after one wheel tick")
	}
	if strings.Contains(v, "0002") {
		t.Errorf("row 2 still visible after scrolling past it")
	}
}

func TestTableModel_RebindResetsSelection(t *testing.T) {
	m := testTable(t, 100, 30, 11)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = updated.(TableModel)

	src := testSource(100)
	m = m.Rebind(data.NewView(src, []int{7, 42}))

	if m.VisibleRows() != 2 {
		t.Fatalf("VisibleRows = %d, want 2", m.VisibleRows())
	}
	if m.SelectedIndex() != 0 {
		t.Errorf("selected = %d, want 0 after rebind", m.SelectedIndex())
	}
	v := m.View()
	if !strings.Contains(v, "0007") || !strings.Contains(v, "0042") {
		t.Errorf("filtered rows missing from view")
	}
	if strings.Contains(v, "0001") {
		t.Errorf("unfiltered row leaked into view")
	}
}

func TestTableModel_EmptyView(t *testing.T) {
	src := &data.Source{Name: "empty", Keys: []string{"id"}}
	m := NewTableModel(data.FullView(src), schema.Derive(src.Keys), theme.Default(), config.Defaults())
	m = m.SetSize(20, 5)

	if m.Selected() != nil {
		t.Errorf("Selected should be nil for empty view")
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 5 {
		t.Errorf("view has %d lines, want 5 (header + blank body)", len(lines))
	}

	// Movement on an empty table must not panic.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(TableModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	_ = updated
}

func TestTableModel_SlotCacheReusedAcrossFrames(t *testing.T) {
	m := testTable(t, 100, 30, 11)

	// Find the cache entry for row 5 and poison its rendered lines.
	slot, ok := m.sh.eng.Pool().SlotOf(5)
	if !ok {
		t.Fatal("row 5 not materialized")
	}
	m.sh.cache[slot].lines = []string{"SENTINEL"}

	// One step down keeps row 5 in the window; its slot must not repaint.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(TableModel)
	if !strings.Contains(m.View(), "SENTINEL") {
		t.Errorf("slot repainted for a stable row")
	}
}
