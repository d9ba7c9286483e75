// ABOUTME: Row data model for the table viewer: flat string-keyed records
// ABOUTME: Sources carry rows plus the column key order they were discovered in

package data

import "golang.org/x/text/unicode/norm"

// Row is one record. Values are always strings; loaders coerce scalars.
type Row map[string]string

// Cell returns the value for key, or empty.
func (r Row) Cell(key string) string {
	return r[key]
}

// Source is an in-memory row set.
type Source struct {
	Name string
	Keys []string // column keys in first-seen order
	Rows []Row
}

// Len returns the number of rows.
func (s *Source) Len() int {
	return len(s.Rows)
}

// Row returns the i-th row, or nil when out of range.
func (s *Source) Row(i int) Row {
	if i < 0 || i >= len(s.Rows) {
		return nil
	}
	return s.Rows[i]
}

// mergeKeys appends the keys of order that base does not contain yet,
// preserving first-seen order across shards.
func mergeKeys(base, order []string) []string {
	seen := make(map[string]bool, len(base))
	for _, k := range base {
		seen[k] = true
	}
	for _, k := range order {
		if !seen[k] {
			seen[k] = true
			base = append(base, k)
		}
	}
	return base
}

// normKey normalizes text to NFC so filter queries match rows regardless of
// the Unicode composition the data arrived in.
func normKey(s string) string {
	return norm.NFC.String(s)
}
