// ABOUTME: Fenwick (binary indexed) tree of per-row heights for O(log n) prefix sums
// ABOUTME: Backs cumulative offset queries; updated in place as rows get measured

package vtable

// OffsetIndex maintains cumulative-height queries over all rows. Point
// updates and prefix sums are O(log n).
type OffsetIndex struct {
	tree    []float64 // 1-based Fenwick tree
	heights []float64 // current per-row heights, for delta updates
}

// NewOffsetIndex creates an index over n rows, each starting at height
// estimate.
func NewOffsetIndex(n int, estimate float64) *OffsetIndex {
	ix := &OffsetIndex{}
	ix.Resize(n, estimate)
	return ix
}

// Len returns the number of rows covered by the index.
func (ix *OffsetIndex) Len() int {
	return len(ix.heights)
}

// Resize rebuilds the index for n rows, resetting every height to estimate.
func (ix *OffsetIndex) Resize(n int, estimate float64) {
	ix.tree = make([]float64, n+1)
	ix.heights = make([]float64, n)
	for i := range ix.heights {
		ix.heights[i] = estimate
	}
	// Linear-time Fenwick construction.
	for i := 1; i <= n; i++ {
		ix.tree[i] += estimate
		if parent := i + (i & -i); parent <= n {
			ix.tree[parent] += ix.tree[i]
		}
	}
}

// Set updates row i to height h.
func (ix *OffsetIndex) Set(i int, h float64) {
	if i < 0 || i >= len(ix.heights) {
		return
	}
	delta := h - ix.heights[i]
	if delta == 0 {
		return
	}
	ix.heights[i] = h
	for j := i + 1; j < len(ix.tree); j += j & -j {
		ix.tree[j] += delta
	}
}

// Height returns the current height of row i.
func (ix *OffsetIndex) Height(i int) float64 {
	if i < 0 || i >= len(ix.heights) {
		return 0
	}
	return ix.heights[i]
}

// SumUntil returns the cumulative height of rows [0, i). It is the vertical
// offset at which row i begins.
func (ix *OffsetIndex) SumUntil(i int) float64 {
	if i > len(ix.heights) {
		i = len(ix.heights)
	}
	var sum float64
	for j := i; j > 0; j -= j & -j {
		sum += ix.tree[j]
	}
	return sum
}

// Total returns the cumulative height of all rows.
func (ix *OffsetIndex) Total() float64 {
	return ix.SumUntil(len(ix.heights))
}
