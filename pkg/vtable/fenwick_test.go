// ABOUTME: Tests for the Fenwick-tree offset index
// ABOUTME: Covers construction, point updates, prefix sums, and resizing

package vtable

import "testing"

func TestOffsetIndex_InitialEstimates(t *testing.T) {
	t.Parallel()

	ix := NewOffsetIndex(10, 2)

	if got := ix.SumUntil(0); got != 0 {
		t.Errorf("SumUntil(0) = %v, want 0", got)
	}
	if got := ix.SumUntil(5); got != 10 {
		t.Errorf("SumUntil(5) = %v, want 10", got)
	}
	if got := ix.Total(); got != 20 {
		t.Errorf("Total() = %v, want 20", got)
	}
}

func TestOffsetIndex_Set(t *testing.T) {
	t.Parallel()

	ix := NewOffsetIndex(8, 1)
	ix.Set(3, 5)
	ix.Set(0, 2)

	if got := ix.Height(3); got != 5 {
		t.Errorf("Height(3) = %v, want 5", got)
	}
	if got := ix.SumUntil(4); got != 2+1+1+5 {
		t.Errorf("SumUntil(4) = %v, want 9", got)
	}
	if got := ix.Total(); got != 2+1+1+5+4 {
		t.Errorf("Total() = %v, want 13", got)
	}
}

func TestOffsetIndex_SetTwiceAppliesDelta(t *testing.T) {
	t.Parallel()

	ix := NewOffsetIndex(4, 1)
	ix.Set(2, 10)
	ix.Set(2, 3)

	if got := ix.SumUntil(3); got != 1+1+3 {
		t.Errorf("SumUntil(3) = %v, want 5", got)
	}
}

func TestOffsetIndex_PrefixSumsMatchNaive(t *testing.T) {
	t.Parallel()

	const n = 100
	ix := NewOffsetIndex(n, 1)
	heights := make([]float64, n)
	for i := range heights {
		heights[i] = 1
	}
	for i := 0; i < n; i += 7 {
		h := float64(i%5) + 0.5
		ix.Set(i, h)
		heights[i] = h
	}

	var sum float64
	for i := 0; i <= n; i++ {
		if got := ix.SumUntil(i); got != sum {
			t.Fatalf("SumUntil(%d) = %v, want %v", i, got, sum)
		}
		if i < n {
			sum += heights[i]
		}
	}
}

func TestOffsetIndex_Resize(t *testing.T) {
	t.Parallel()

	ix := NewOffsetIndex(4, 1)
	ix.Set(1, 9)
	ix.Resize(6, 2)

	if got := ix.Len(); got != 6 {
		t.Errorf("Len() = %d, want 6", got)
	}
	if got := ix.Total(); got != 12 {
		t.Errorf("Total() after resize = %v, want 12", got)
	}
	if got := ix.Height(1); got != 2 {
		t.Errorf("Height(1) after resize = %v, want 2", got)
	}
}

func TestOffsetIndex_OutOfRange(t *testing.T) {
	t.Parallel()

	ix := NewOffsetIndex(3, 1)
	ix.Set(-1, 5)
	ix.Set(3, 5)

	if got := ix.Total(); got != 3 {
		t.Errorf("Total() = %v, want 3", got)
	}
	if got := ix.SumUntil(99); got != 3 {
		t.Errorf("SumUntil(99) = %v, want 3 (clamped)", got)
	}
}
