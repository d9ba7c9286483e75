// ABOUTME: Bounded slot pool mapping rows to reusable render-resource slots
// ABOUTME: Eviction picks the occupant furthest outside the protected viewport

package vtable

import "fmt"

// SlotPool is a bounded pool of render-resource slots. It keeps a
// bidirectional row<->slot mapping and prefers to leave existing bindings
// alone across calls, so the resources behind the slots are reused instead
// of recreated. It is a long-lived mutable resource owned by the Engine and
// must not be shared across concurrent Refresh calls.
type SlotPool struct {
	slotOf map[int]int // row -> slot
	rowAt  []int       // slot -> row, SlotEmpty when free
}

// NewSlotPool creates a pool with the given capacity.
func NewSlotPool(capacity int) *SlotPool {
	p := &SlotPool{}
	p.SetCap(capacity)
	return p
}

// Cap returns the pool capacity.
func (p *SlotPool) Cap() int {
	return len(p.rowAt)
}

// Len returns the number of occupied slots.
func (p *SlotPool) Len() int {
	return len(p.slotOf)
}

// SetCap resizes the pool, dropping every binding.
func (p *SlotPool) SetCap(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	p.slotOf = make(map[int]int, capacity)
	p.rowAt = make([]int, capacity)
	for i := range p.rowAt {
		p.rowAt[i] = SlotEmpty
	}
}

// Reset drops every binding but keeps the capacity.
func (p *SlotPool) Reset() {
	p.SetCap(len(p.rowAt))
}

// SlotOf returns the slot bound to row, if any.
func (p *SlotPool) SlotOf(row int) (int, bool) {
	s, ok := p.slotOf[row]
	return s, ok
}

// RowAt returns the row bound to slot, or SlotEmpty.
func (p *SlotPool) RowAt(slot int) int {
	if slot < 0 || slot >= len(p.rowAt) {
		return SlotEmpty
	}
	return p.rowAt[slot]
}

// AllocFresh binds a free slot to row and returns it. The pool must not be
// saturated and row must be unmapped. The lowest-numbered free slot is
// chosen, keeping allocation deterministic.
func (p *SlotPool) AllocFresh(row int) int {
	if _, ok := p.slotOf[row]; ok {
		panic(fmt.Sprintf("vtable: AllocFresh for already mapped row %d", row))
	}
	for slot, r := range p.rowAt {
		if r == SlotEmpty {
			p.rowAt[slot] = row
			p.slotOf[row] = slot
			return slot
		}
	}
	panic(fmt.Sprintf("vtable: AllocFresh on saturated pool (cap %d)", len(p.rowAt)))
}

// EvictFurthest rebinds a slot to row by evicting the occupant whose bound
// row lies furthest outside the closed protected interval [rangeStart,
// rangeEnd]. Distance is max(rangeStart-idx, idx-rangeEnd, 0); ties go to
// the smaller row index so eviction order is reproducible. Returns false
// only when every occupant lies inside the protected interval, which means
// the capacity is misconfigured relative to the viewport and buffer size.
func (p *SlotPool) EvictFurthest(rangeStart, rangeEnd, row int) (int, bool) {
	if _, ok := p.slotOf[row]; ok {
		panic(fmt.Sprintf("vtable: EvictFurthest for already mapped row %d", row))
	}
	victim := -1
	best := 0
	for slot, r := range p.rowAt {
		if r == SlotEmpty {
			continue
		}
		d := 0
		if rangeStart-r > d {
			d = rangeStart - r
		}
		if r-rangeEnd > d {
			d = r - rangeEnd
		}
		if d == 0 {
			continue // inside the protected interval
		}
		if victim == -1 || d > best || (d == best && r < p.rowAt[victim]) {
			victim = slot
			best = d
		}
	}
	if victim == -1 {
		return 0, false
	}
	delete(p.slotOf, p.rowAt[victim])
	p.rowAt[victim] = row
	p.slotOf[row] = victim
	return victim, true
}

// Release unbinds row from its slot, if mapped.
func (p *SlotPool) Release(row int) {
	slot, ok := p.slotOf[row]
	if !ok {
		return
	}
	delete(p.slotOf, row)
	p.rowAt[slot] = SlotEmpty
}
