// ABOUTME: End-to-end tests for Engine.Refresh orchestration
// ABOUTME: Covers empty tables, fits-entirely correction, idempotence, jumps, stability

package vtable

import (
	"reflect"
	"testing"
)

// newUniformEngine builds an engine over n rows of fixed height 20 with a
// generous pool.
func newUniformEngine(n int) *Engine {
	return NewEngine(n, 30, 20, func(int) float64 { return 20 })
}

func TestEngine_EmptyTable(t *testing.T) {
	t.Parallel()

	e := newUniformEngine(0)
	st := e.Refresh(uniformState(0), AnchorAt(0, 0))

	if got := rowsDomain(st.Rows); len(got) != 0 {
		t.Errorf("rows domain = %v, want empty", got)
	}
	if len(st.RowOffsets) != 0 {
		t.Errorf("RowOffsets = %v, want empty", st.RowOffsets)
	}
	if st.ScrollY != 0 {
		t.Errorf("ScrollY = %v, want 0", st.ScrollY)
	}
}

func TestEngine_TopAnchor(t *testing.T) {
	t.Parallel()

	e := newUniformEngine(100)
	st := e.Refresh(uniformState(100), AnchorAt(0, 0))

	got := rowsDomain(st.Rows)
	if len(got) != 15 || got[0] != 0 || got[14] != 14 {
		t.Errorf("rows domain = %v, want [0,15)", got)
	}
	if st.ScrollY != 0 {
		t.Errorf("ScrollY = %v, want 0", st.ScrollY)
	}
	if st.MaxScrollY != 100*20-200 {
		t.Errorf("MaxScrollY = %v, want 1800", st.MaxScrollY)
	}
}

func TestEngine_ScrollYFromOffsetAndAnchor(t *testing.T) {
	t.Parallel()

	e := newUniformEngine(100)
	st := e.Refresh(uniformState(100), AnchorAt(30, -10))

	// Row 30 starts at 600; 10 of it is hidden above the viewport.
	if st.ScrollY != 610 {
		t.Errorf("ScrollY = %v, want 610", st.ScrollY)
	}
}

func TestEngine_FitsEntirelyCorrection(t *testing.T) {
	t.Parallel()

	// 5 rows of 20 inside a 200-high body: no scroll region exists, so an
	// anchor starting mid-table is re-resolved to the end with offset 0.
	e := newUniformEngine(5)
	st := uniformState(5)
	res := e.Refresh(st, AnchorAt(3, -7))

	if res.MaxScrollY != 0 {
		t.Fatalf("MaxScrollY = %v, want 0", res.MaxScrollY)
	}
	if res.FirstRowIndex != 0 {
		t.Errorf("FirstRowIndex = %d, want 0", res.FirstRowIndex)
	}
	if res.FirstRowOffset != 0 {
		t.Errorf("FirstRowOffset = %v, want 0", res.FirstRowOffset)
	}
	if res.ScrollY != 0 {
		t.Errorf("ScrollY = %v, want 0", res.ScrollY)
	}
}

func TestEngine_Idempotence(t *testing.T) {
	t.Parallel()

	e := newUniformEngine(100)
	anchor := AnchorAt(42, -3)

	st1 := e.Refresh(uniformState(100), anchor)
	st2 := e.Refresh(st1, anchor)

	if !reflect.DeepEqual(st1, st2) {
		t.Errorf("repeated refresh diverged:\n first %+v\nsecond %+v", st1, st2)
	}
}

func TestEngine_SlotStabilityAcrossScroll(t *testing.T) {
	t.Parallel()

	e := newUniformEngine(100)
	st := e.Refresh(uniformState(100), AnchorAt(40, 0))

	before := make(map[int]int)
	for slot, row := range st.Rows {
		if row != SlotEmpty {
			before[row] = slot
		}
	}

	// One-row scroll in incremental mode: shared rows keep their slots.
	st.Scrolling = true
	st = e.Refresh(st, AnchorAt(41, 0))

	changed := 0
	for slot, row := range st.Rows {
		if row == SlotEmpty {
			continue
		}
		if prev, ok := before[row]; ok && prev != slot {
			changed++
		}
	}
	if changed != 0 {
		t.Errorf("%d shared rows changed slots on a one-row scroll", changed)
	}
}

func TestEngine_ScrollJumpedY(t *testing.T) {
	t.Parallel()

	e := newUniformEngine(100)
	st := e.Refresh(uniformState(100), AnchorAt(0, 0))

	t.Run("jump that moves reports true", func(t *testing.T) {
		a := AnchorAt(50, 0)
		a.ScrollJumpedY = true
		res := e.Refresh(st, a)
		if !res.ScrollJumpedY {
			t.Error("ScrollJumpedY = false, want true")
		}
	})

	t.Run("jump to same position reports false", func(t *testing.T) {
		a := AnchorAt(0, 0)
		a.ScrollJumpedY = true
		res := e.Refresh(st, a)
		if res.ScrollJumpedY {
			t.Error("ScrollJumpedY = true, want false")
		}
	})

	t.Run("plain scroll never reports a jump", func(t *testing.T) {
		res := e.Refresh(st, AnchorAt(10, 0))
		if res.ScrollJumpedY {
			t.Error("ScrollJumpedY = true, want false")
		}
	})
}

func TestEngine_ScrollYClampedToMax(t *testing.T) {
	t.Parallel()

	e := newUniformEngine(100)
	st := e.Refresh(uniformState(100), AnchorAtLast(99))

	if st.ScrollY != st.MaxScrollY {
		t.Errorf("ScrollY = %v, want MaxScrollY %v", st.ScrollY, st.MaxScrollY)
	}
}

func TestEngine_InputStateNotMutated(t *testing.T) {
	t.Parallel()

	e := newUniformEngine(100)
	st := e.Refresh(uniformState(100), AnchorAt(0, 0))

	rowsBefore := append([]int(nil), st.Rows...)
	offsetsBefore := make(map[int]float64, len(st.RowOffsets))
	for k, v := range st.RowOffsets {
		offsetsBefore[k] = v
	}

	st.Scrolling = true
	_ = e.Refresh(st, AnchorAt(5, 0))

	if !reflect.DeepEqual(st.Rows, rowsBefore) {
		t.Error("input Rows slice was mutated")
	}
	if !reflect.DeepEqual(st.RowOffsets, offsetsBefore) {
		t.Error("input RowOffsets map was mutated")
	}
}

func TestEngine_Reset(t *testing.T) {
	t.Parallel()

	e := newUniformEngine(100)
	_ = e.Refresh(uniformState(100), AnchorAt(0, 0))

	e.Reset(50, 0)

	if e.Pool().Len() != 0 {
		t.Errorf("pool occupancy after reset = %d, want 0", e.Pool().Len())
	}
	if got := e.ContentHeight(); got != 50*20 {
		t.Errorf("ContentHeight after reset = %v, want 1000", got)
	}

	st := uniformState(50)
	res := e.Refresh(st, AnchorAt(0, 0))
	if got := rowsDomain(res.Rows); len(got) != 15 {
		t.Errorf("rows domain after reset = %v, want 15 rows", got)
	}
}

func TestEngine_VariableHeights(t *testing.T) {
	t.Parallel()

	// Alternating 10/30 rows, average 20. The walk must consume exactly
	// enough rows to cover the 200 budget and offsets must be cumulative.
	heights := func(row int) float64 {
		if row%2 == 0 {
			return 10
		}
		return 30
	}
	e := NewEngine(100, 30, 20, heights)
	st := e.Refresh(uniformState(100), AnchorAt(0, 0))

	if st.RowOffsets[0] != 0 {
		t.Errorf("RowOffsets[0] = %v, want 0", st.RowOffsets[0])
	}
	if st.RowOffsets[1] != 10 {
		t.Errorf("RowOffsets[1] = %v, want 10", st.RowOffsets[1])
	}
	if st.RowOffsets[2] != 40 {
		t.Errorf("RowOffsets[2] = %v, want 40", st.RowOffsets[2])
	}
	// 10 pairs of (10+30) reach 200 at row 9.
	if got := rowsDomain(st.Rows); got[len(got)-1] != 14 {
		t.Errorf("rows domain = %v, want last row 14", got)
	}
}
