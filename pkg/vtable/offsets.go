// ABOUTME: Walks a resolved row range computing cumulative offsets and slot bindings
// ABOUTME: Full mode rebuilds everything; viewport-only mode merges prior offsets forward

package vtable

import "fmt"

// computeOffsets fills st.Rows and st.RowOffsets for the resolved range.
//
// In full mode every row in [FirstBuffer, EndBuffer) is walked, gets a slot,
// and populates a freshly built Rows array. In viewport-only mode (active
// scrolling) only viewport rows are re-walked and re-slotted; buffer rows
// keep whatever slot they already held, and their offsets are carried
// forward unchanged from the previous RowOffsets map.
//
// st.Rows and st.RowOffsets are replaced with fresh allocations either way,
// so the caller's previous state is never aliased.
func computeOffsets(st *RenderState, pool *SlotPool, hc *HeightCache, r RowRange, viewportOnly bool) {
	prevRows := st.Rows
	prevOffsets := st.RowOffsets

	if r.IsEmpty() {
		st.Rows = emptyRows(pool.Cap())
		st.RowOffsets = map[int]float64{}
		return
	}

	ix := hc.Offsets()

	rows := emptyRows(pool.Cap())
	if viewportOnly {
		// Retain existing bindings; only the viewport is re-walked.
		copy(rows, prevRows)
	}

	walkFirst, walkEnd := r.FirstBuffer, r.EndBuffer
	if viewportOnly {
		walkFirst, walkEnd = r.FirstViewport, r.EndViewport
	}

	offsets := make(map[int]float64, walkEnd-walkFirst)
	running := ix.SumUntil(walkFirst)
	for row := walkFirst; row < walkEnd; row++ {
		offsets[row] = running
		running += hc.HeightFor(row)
		assignSlot(rows, pool, r, row)
	}

	if viewportOnly {
		// Declarative carry-over: every row still bound to a slot but not
		// freshly walked keeps its prior offset; rows absent from both the
		// old and new binding are dropped with the old map.
		for _, row := range rows {
			if row == SlotEmpty {
				continue
			}
			if _, fresh := offsets[row]; fresh {
				continue
			}
			if prev, ok := prevOffsets[row]; ok {
				offsets[row] = prev
			}
		}
	}

	st.Rows = rows
	st.RowOffsets = offsets
}

// assignSlot gives row a slot: an existing binding is kept, a saturated pool
// evicts the occupant furthest outside the viewport, and otherwise a fresh
// slot is bound. A saturated pool with no evictable occupant means the
// capacity cannot cover viewport plus buffer, which would corrupt slot
// assignment if ignored.
func assignSlot(rows []int, pool *SlotPool, r RowRange, row int) {
	slot, ok := pool.SlotOf(row)
	if !ok && pool.Len() >= pool.Cap() {
		slot, ok = pool.EvictFurthest(r.FirstViewport, r.EndViewport-1, row)
		if !ok {
			panic(fmt.Sprintf(
				"vtable: slot pool cap %d cannot cover viewport [%d,%d) plus buffer",
				pool.Cap(), r.FirstViewport, r.EndViewport))
		}
	} else if !ok {
		slot = pool.AllocFresh(row)
	}
	rows[slot] = row
}

// emptyRows returns a slot array of the given capacity with every slot empty.
func emptyRows(capacity int) []int {
	rows := make([]int, capacity)
	for i := range rows {
		rows[i] = SlotEmpty
	}
	return rows
}
