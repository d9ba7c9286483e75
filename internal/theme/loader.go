// ABOUTME: JSON theme file loading with validation and default fallback
// ABOUTME: Unset palette fields inherit from DefaultPalette to stay complete

package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// jsonPalette is the JSON-friendly representation of a Palette. Fields use
// snake_case to match the file format; values are ANSI color numbers or hex
// strings, whatever lipgloss accepts.
type jsonPalette struct {
	Header      string `json:"header"`
	HeaderBg    string `json:"header_bg"`
	Row         string `json:"row"`
	RowAlt      string `json:"row_alt"`
	Selected    string `json:"selected"`
	SelectedBg  string `json:"selected_bg"`
	Border      string `json:"border"`
	Muted       string `json:"muted"`
	Accent      string `json:"accent"`
	FilterMatch string `json:"filter_match"`
	StatusText  string `json:"status_text"`
	StatusBg    string `json:"status_bg"`
}

type jsonTheme struct {
	Name    string      `json:"name"`
	Palette jsonPalette `json:"palette"`
}

// LoadFile reads a JSON theme file. Missing palette fields fall back to the
// default palette.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	name := jt.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return New(name, convertPalette(jt.Palette, DefaultPalette())), nil
}

// Resolve loads a theme by name or path. An empty name selects the default;
// a name without a path separator is looked up in themesDir.
func Resolve(name, themesDir string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	path := name
	if !strings.ContainsRune(name, os.PathSeparator) && filepath.Ext(name) == "" {
		path = filepath.Join(themesDir, name+".json")
	}
	return LoadFile(path)
}

// convertPalette maps a jsonPalette onto base, keeping base values for any
// unset field.
func convertPalette(jp jsonPalette, base Palette) Palette {
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&base.Header, jp.Header)
	set(&base.HeaderBg, jp.HeaderBg)
	set(&base.Row, jp.Row)
	set(&base.RowAlt, jp.RowAlt)
	set(&base.Selected, jp.Selected)
	set(&base.SelectedBg, jp.SelectedBg)
	set(&base.Border, jp.Border)
	set(&base.Muted, jp.Muted)
	set(&base.Accent, jp.Accent)
	set(&base.FilterMatch, jp.FilterMatch)
	set(&base.StatusText, jp.StatusText)
	set(&base.StatusBg, jp.StatusBg)
	return base
}
