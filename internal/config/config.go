// ABOUTME: Viewer settings loading with global + project config deep merge
// ABOUTME: JSON-based configuration using encoding/json; no external libs

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings holds the merged viewer configuration.
type Settings struct {
	// Theme is the name or path of a theme file. Empty selects the default.
	Theme string `json:"theme,omitempty"`

	// BufferRows is the number of off-screen rows pre-rendered on each
	// flank of the viewport.
	BufferRows int `json:"buffer_rows,omitempty"`

	// PoolSlack is how many extra slots the render pool carries beyond the
	// worst-case viewport plus both buffers.
	PoolSlack int `json:"pool_slack,omitempty"`

	// EstimateRowHeight is the assumed height in lines of unmeasured rows.
	EstimateRowHeight int `json:"estimate_row_height,omitempty"`

	// WheelRows is the number of rows scrolled per mouse wheel tick.
	WheelRows int `json:"wheel_rows,omitempty"`

	// Schema is the path of a column schema file applied when the data
	// source does not carry its own.
	Schema string `json:"schema,omitempty"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		BufferRows:        5,
		PoolSlack:         8,
		EstimateRowHeight: 1,
		WheelRows:         3,
	}
}

// Load reads and merges global and project-local settings over the defaults.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalSettingsFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectSettingsFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	base := Defaults()
	merged := merge(merge(&base, global), project)
	return merged, nil
}

// loadFile reads Settings from a JSON file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge deep-merges overlay settings onto base settings. Non-zero overlay
// values win.
func merge(base, overlay *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if overlay == nil {
		return base
	}
	out := *base
	if overlay.Theme != "" {
		out.Theme = overlay.Theme
	}
	if overlay.BufferRows != 0 {
		out.BufferRows = overlay.BufferRows
	}
	if overlay.PoolSlack != 0 {
		out.PoolSlack = overlay.PoolSlack
	}
	if overlay.EstimateRowHeight != 0 {
		out.EstimateRowHeight = overlay.EstimateRowHeight
	}
	if overlay.WheelRows != 0 {
		out.WheelRows = overlay.WheelRows
	}
	if overlay.Schema != "" {
		out.Schema = overlay.Schema
	}
	return &out
}
