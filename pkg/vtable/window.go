// ABOUTME: Resolves a scroll anchor into a row range of viewport plus buffer rows
// ABOUTME: Walks heights forward from a leading row or backward from a trailing row

package vtable

// resolveWindow turns a scroll anchor into the row range to materialize:
// the rows needed to fill MaxAvailHeight starting from the anchor, extended
// by BufferRows on each flank. Heights for every row in the returned range
// are resolved (measured or estimated) by the time this returns, so the
// offset pass never triggers measurement. The resolved first viewport row
// and offset are written back into st.
func resolveWindow(st *RenderState, hc *HeightCache, a ScrollAnchor) RowRange {
	if st.RowsCount == 0 {
		return RowRange{}
	}

	// Out-of-range anchors resolve to "anchor at the end".
	if a.FirstIndex >= st.RowsCount || (a.HasLast && a.LastIndex >= st.RowsCount) {
		a.LastIndex = st.RowsCount - 1
		a.HasLast = true
	}

	var start, step int
	var acc float64
	if a.HasLast {
		start, step = a.LastIndex, -1
		acc = 0
	} else {
		start, step = a.FirstIndex, 1
		acc = a.FirstOffset
	}

	// Walk until the accumulated height covers the budget or we run off
	// either end. The last visited index closes the viewport.
	end := start
	for idx := start; idx >= 0 && idx < st.RowsCount; idx += step {
		end = idx
		acc += hc.HeightFor(idx)
		if acc >= st.MaxAvailHeight {
			break
		}
	}

	r := RowRange{}
	if start <= end {
		r.FirstViewport, r.EndViewport = start, end+1
	} else {
		r.FirstViewport, r.EndViewport = end, start+1
	}

	firstOffset := a.FirstOffset
	if a.HasLast {
		// The backward walk pinned the trailing row to the viewport
		// bottom; recompute where the leading row starts relative to
		// the viewport top.
		walked := acc
		firstOffset = st.AvailHeight - walked
		if firstOffset > 0 {
			firstOffset = 0
		}
		if h := hc.HeightFor(r.FirstViewport); h > 0 && -firstOffset >= h {
			// Rounding pushed the first row fully off-screen.
			r.FirstViewport++
			firstOffset += h
		}
	}

	r.FirstBuffer = r.FirstViewport - st.BufferRows
	if r.FirstBuffer < 0 {
		r.FirstBuffer = 0
	}
	for idx := r.FirstBuffer; idx < r.FirstViewport; idx++ {
		hc.HeightFor(idx)
	}
	r.EndBuffer = r.EndViewport + st.BufferRows
	if r.EndBuffer > st.RowsCount {
		r.EndBuffer = st.RowsCount
	}
	for idx := r.EndViewport; idx < r.EndBuffer; idx++ {
		hc.HeightFor(idx)
	}

	st.FirstRowIndex = r.FirstViewport
	st.FirstRowOffset = firstOffset
	return r
}
