// ABOUTME: Column schema for the table viewer: keys, titles, widths, wrapping
// ABOUTME: Loaded from YAML files or derived from the data when absent

package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Align is a column text alignment.
type Align string

const (
	AlignLeft  Align = "left"
	AlignRight Align = "right"
)

// Column describes one table column.
type Column struct {
	// Key selects the cell value from a row.
	Key string `yaml:"key"`
	// Title is the header label; defaults to Key.
	Title string `yaml:"title,omitempty"`
	// Width is a fixed column width in cells. Zero means the column shares
	// the space left over after fixed columns are placed.
	Width int `yaml:"width,omitempty"`
	// Align is left or right; defaults to left.
	Align Align `yaml:"align,omitempty"`
	// Wrap lets cell content wrap onto extra lines instead of truncating.
	// Wrapping columns are what make row heights variable.
	Wrap bool `yaml:"wrap,omitempty"`
	// Markdown marks the column as markdown for the detail view.
	Markdown bool `yaml:"markdown,omitempty"`
}

// Schema is an ordered list of columns.
type Schema struct {
	Columns []Column `yaml:"columns"`
}

// Load reads a YAML schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", path, err)
	}
	if err := s.normalize(); err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	return &s, nil
}

// Derive builds a schema from a set of column keys, in the given order.
func Derive(keys []string) *Schema {
	s := &Schema{}
	for _, k := range keys {
		s.Columns = append(s.Columns, Column{Key: k, Title: k})
	}
	return s
}

// normalize fills defaults and validates the schema.
func (s *Schema) normalize() error {
	if len(s.Columns) == 0 {
		return fmt.Errorf("no columns defined")
	}
	seen := make(map[string]bool, len(s.Columns))
	for i := range s.Columns {
		c := &s.Columns[i]
		if c.Key == "" {
			return fmt.Errorf("column %d has no key", i)
		}
		if seen[c.Key] {
			return fmt.Errorf("duplicate column key %q", c.Key)
		}
		seen[c.Key] = true
		if c.Title == "" {
			c.Title = c.Key
		}
		switch c.Align {
		case "", AlignLeft:
			c.Align = AlignLeft
		case AlignRight:
		default:
			return fmt.Errorf("column %q: unknown align %q", c.Key, c.Align)
		}
		if c.Width < 0 {
			return fmt.Errorf("column %q: negative width", c.Key)
		}
	}
	return nil
}

// Layout distributes totalWidth cells over the columns: fixed widths first,
// flexible columns share the remainder evenly (minimum 1 cell each). The
// returned slice is parallel to Columns. sep is the width of the separator
// drawn between adjacent columns.
func (s *Schema) Layout(totalWidth, sep int) []int {
	widths := make([]int, len(s.Columns))
	remaining := totalWidth - sep*(len(s.Columns)-1)
	flex := 0
	for i, c := range s.Columns {
		if c.Width > 0 {
			widths[i] = c.Width
			remaining -= c.Width
		} else {
			flex++
		}
	}
	if flex > 0 {
		share := remaining / flex
		extra := remaining % flex
		for i, c := range s.Columns {
			if c.Width > 0 {
				continue
			}
			w := share
			if extra > 0 {
				w++
				extra--
			}
			if w < 1 {
				w = 1
			}
			widths[i] = w
		}
	}
	for i, w := range widths {
		if w < 1 {
			widths[i] = 1
		}
	}
	return widths
}
