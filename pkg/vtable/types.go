// ABOUTME: Core types for the row-virtualization engine: anchors, ranges, render state
// ABOUTME: RenderState is a per-call value; only Engine-owned caches survive by reference

package vtable

// ScrollAnchor describes where to pin the rendered window: either at a leading
// row plus a pixel/line offset, or such that a trailing row ends exactly at the
// bottom of the viewport.
type ScrollAnchor struct {
	FirstIndex  int
	FirstOffset float64

	// LastIndex is only meaningful when HasLast is true. When set, the window
	// is resolved backward so that LastIndex is the final viewport row.
	LastIndex int
	HasLast   bool

	// ScrollJumpedY marks this anchor as an explicit jump request (goto-row,
	// End key). The engine reports it back only if the resolved scroll
	// position actually changed.
	ScrollJumpedY bool
}

// AnchorAt returns an anchor pinning row first at the given offset from the
// viewport top. Offset is zero or negative; negative means the row starts
// above the visible area.
func AnchorAt(first int, offset float64) ScrollAnchor {
	return ScrollAnchor{FirstIndex: first, FirstOffset: offset}
}

// AnchorAtLast returns an anchor pinning row last to the viewport bottom.
func AnchorAtLast(last int) ScrollAnchor {
	return ScrollAnchor{LastIndex: last, HasLast: true}
}

// RowRange is a resolved window of rows. All bounds are exclusive-end.
// Invariant: 0 <= FirstBuffer <= FirstViewport <= EndViewport <= EndBuffer <= rows.
type RowRange struct {
	FirstBuffer   int // first pre-rendered buffer row
	FirstViewport int // first visible row
	EndViewport   int // one past the last visible row
	EndBuffer     int // one past the last pre-rendered buffer row
}

// IsEmpty reports whether the range contains no rows at all.
func (r RowRange) IsEmpty() bool {
	return r.EndBuffer == r.FirstBuffer
}

// RenderState is the input and output of a single Engine.Refresh call.
// It is copied by value on entry; the Rows slice and RowOffsets map of the
// returned state are always fresh allocations, never aliases of the input.
type RenderState struct {
	// Inputs describing the table and viewport geometry.
	RowsCount      int     // number of logical rows
	ContentHeight  float64 // estimated height of all rows (scroll content)
	BodyHeight     float64 // height of the visible table body
	AvailHeight    float64 // body height minus any horizontal scrollbar
	MaxAvailHeight float64 // walk budget: body height plus overscan slack
	BufferRows     int     // off-screen rows pre-rendered on each flank
	Scrolling      bool    // true while actively scrolling (incremental mode)

	// Outputs. Rows maps slot -> row index (SlotEmpty for unoccupied slots);
	// RowOffsets maps row index -> cumulative vertical offset.
	Rows           []int
	RowOffsets     map[int]float64
	FirstRowIndex  int
	FirstRowOffset float64
	ScrollY        float64
	MaxScrollY     float64
	ScrollJumpedY  bool
}

// SlotEmpty marks an unoccupied entry in RenderState.Rows.
const SlotEmpty = -1
