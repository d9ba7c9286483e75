// ABOUTME: Orchestrates window resolution, offset computation, and scroll position
// ABOUTME: Owns the long-lived slot pool and height cache shared across calls

package vtable

// Engine is the row-virtualization engine for one table session. It owns the
// only state that survives across Refresh calls by reference: the slot pool
// and the height cache (with its prefix-sum index). Refresh is a pure
// transform over everything else.
//
// The engine is single-writer: a Refresh call must complete before the next
// one begins. There is no internal locking; the owning UI loop provides the
// serialization.
type Engine struct {
	pool    *SlotPool
	heights *HeightCache
}

// NewEngine creates an engine over rowsCount rows. poolCap bounds the number
// of concurrently materialized rows and must cover the largest possible
// viewport plus both buffers. estimate is the assumed height of unmeasured
// rows; measure resolves true heights lazily and may be nil.
func NewEngine(rowsCount, poolCap int, estimate float64, measure MeasureFunc) *Engine {
	return &Engine{
		pool:    NewSlotPool(poolCap),
		heights: NewHeightCache(rowsCount, estimate, measure),
	}
}

// Heights exposes the engine's height cache.
func (e *Engine) Heights() *HeightCache {
	return e.heights
}

// Pool exposes the engine's slot pool.
func (e *Engine) Pool() *SlotPool {
	return e.pool
}

// Reset rebinds the engine to a new row set of size rowsCount, optionally
// with a new pool capacity (poolCap <= 0 keeps the current one). All slot
// bindings and measured heights are dropped; the next Refresh is a full
// recompute from estimates.
func (e *Engine) Reset(rowsCount, poolCap int) {
	if poolCap > 0 && poolCap != e.pool.Cap() {
		e.pool.SetCap(poolCap)
	} else {
		e.pool.Reset()
	}
	e.heights.Reset(rowsCount)
}

// ContentHeight returns the estimated total height of all rows.
func (e *Engine) ContentHeight() float64 {
	return e.heights.Total()
}

// Refresh resolves the anchor against the previous state and returns the new
// render state: the slot->row array, per-row cumulative offsets, and the
// final scroll position. The input state is not mutated.
func (e *Engine) Refresh(st RenderState, a ScrollAnchor) RenderState {
	prevScrollY := st.ScrollY
	st.ContentHeight = e.heights.Total()

	r := resolveWindow(&st, e.heights, a)

	st.MaxScrollY = st.ContentHeight - st.BodyHeight
	if st.MaxScrollY < 0 {
		st.MaxScrollY = 0
	}

	// When the content fits entirely there is no reachable scroll region;
	// an anchor that still starts mid-table would strand dead space above
	// it. Re-resolve pinned to the end with a zero leading offset.
	if st.MaxScrollY == 0 && r.FirstViewport > 0 {
		r = resolveWindow(&st, e.heights, ScrollAnchor{
			LastIndex: st.RowsCount - 1,
			HasLast:   true,
		})
		st.FirstRowOffset = 0
	}

	computeOffsets(&st, e.pool, e.heights, r, st.Scrolling)

	if st.RowsCount > 0 {
		st.ScrollY = st.RowOffsets[r.FirstViewport] - st.FirstRowOffset
	} else {
		st.ScrollY = 0
	}

	st.ScrollJumpedY = a.ScrollJumpedY && st.ScrollY != prevScrollY

	if st.ScrollY < 0 {
		st.ScrollY = 0
	}
	if st.ScrollY > st.MaxScrollY {
		st.ScrollY = st.MaxScrollY
	}
	return st
}

// Range re-resolves the row range for the given state and anchor without
// touching slots or offsets. Callers that only need the window bounds (for
// example to decide which rows to paint) use this.
func (e *Engine) Range(st RenderState, a ScrollAnchor) RowRange {
	return resolveWindow(&st, e.heights, a)
}
