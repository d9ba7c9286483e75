// ABOUTME: Lazy measure-or-estimate height oracle with a per-row cache
// ABOUTME: First access measures via MeasureFunc and feeds the offset index

package vtable

// MeasureFunc returns the true height of a row. It is called at most once per
// row between invalidations; results are cached.
type MeasureFunc func(row int) float64

// HeightCache supplies row heights on demand. Rows that have never been
// touched report the configured estimate; the first real access triggers
// measurement and records the result in both the cache and the offset index,
// so prefix sums stay consistent with everything the engine has looked at.
type HeightCache struct {
	measure  MeasureFunc
	estimate float64
	measured map[int]float64
	offsets  *OffsetIndex
}

// NewHeightCache creates a cache over n rows with the given estimate for
// unmeasured rows. measure may be nil, in which case every row reports the
// estimate.
func NewHeightCache(n int, estimate float64, measure MeasureFunc) *HeightCache {
	return &HeightCache{
		measure:  measure,
		estimate: estimate,
		measured: make(map[int]float64),
		offsets:  NewOffsetIndex(n, estimate),
	}
}

// Offsets returns the prefix-sum index kept in lockstep with this cache.
func (hc *HeightCache) Offsets() *OffsetIndex {
	return hc.offsets
}

// Estimate returns the height assumed for unmeasured rows.
func (hc *HeightCache) Estimate() float64 {
	return hc.estimate
}

// HeightFor returns the height of row, measuring it on first access.
func (hc *HeightCache) HeightFor(row int) float64 {
	if row < 0 || row >= hc.offsets.Len() {
		return 0
	}
	if h, ok := hc.measured[row]; ok {
		return h
	}
	if hc.measure == nil {
		return hc.estimate
	}
	h := hc.measure(row)
	if h < 0 {
		h = 0
	}
	hc.measured[row] = h
	hc.offsets.Set(row, h)
	return h
}

// Measured reports whether row has a true measured height.
func (hc *HeightCache) Measured(row int) bool {
	_, ok := hc.measured[row]
	return ok
}

// Invalidate drops the measured height of a single row, reverting it to the
// estimate until it is touched again.
func (hc *HeightCache) Invalidate(row int) {
	if _, ok := hc.measured[row]; !ok {
		return
	}
	delete(hc.measured, row)
	hc.offsets.Set(row, hc.estimate)
}

// Reset rebinds the cache to n rows and drops every measurement. Used on
// data change and on resize, when previously measured heights become stale.
func (hc *HeightCache) Reset(n int) {
	hc.measured = make(map[int]float64)
	hc.offsets.Resize(n, hc.estimate)
}

// Total returns the estimated height of all rows: measured heights where
// known, the estimate elsewhere.
func (hc *HeightCache) Total() float64 {
	return hc.offsets.Total()
}
