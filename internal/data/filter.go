// ABOUTME: Fuzzy row filtering over concatenated cell text via sahilm/fuzzy
// ABOUTME: Returns logical row indices ranked by match score

package data

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// rowHaystack adapts a Source to fuzzy.Source, matching against the
// concatenated cells of each row in key order.
type rowHaystack struct {
	src  *Source
	text []string // lazily built per-row concatenations
}

func newRowHaystack(src *Source) *rowHaystack {
	h := &rowHaystack{src: src, text: make([]string, src.Len())}
	for i := range h.text {
		var b strings.Builder
		row := src.Rows[i]
		for j, k := range src.Keys {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(row[k])
		}
		h.text[i] = b.String()
	}
	return h
}

func (h *rowHaystack) String(i int) string { return h.text[i] }
func (h *rowHaystack) Len() int            { return len(h.text) }

// Filter returns the indices of rows matching query, best matches first.
// An empty query matches every row in natural order.
func Filter(src *Source, query string) []int {
	if query == "" {
		out := make([]int, src.Len())
		for i := range out {
			out[i] = i
		}
		return out
	}
	matches := fuzzy.FindFrom(normKey(query), newRowHaystack(src))
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}

// View is a Source restricted to a subset of row indices. It is what a
// filtered table binds the virtualization engine to.
type View struct {
	Source  *Source
	Indices []int // view row -> source row
}

// NewView builds a view over the given source rows.
func NewView(src *Source, indices []int) *View {
	return &View{Source: src, Indices: indices}
}

// FullView returns the unfiltered view of src.
func FullView(src *Source) *View {
	return NewView(src, Filter(src, ""))
}

// Len returns the number of visible rows.
func (v *View) Len() int {
	return len(v.Indices)
}

// Row returns the i-th visible row.
func (v *View) Row(i int) Row {
	if i < 0 || i >= len(v.Indices) {
		return nil
	}
	return v.Source.Row(v.Indices[i])
}

// SourceIndex maps a view row back to its source row index.
func (v *View) SourceIndex(i int) int {
	if i < 0 || i >= len(v.Indices) {
		return -1
	}
	return v.Indices[i]
}
