// ABOUTME: Semantic lipgloss styles for the table viewer chrome and rows
// ABOUTME: Palette maps roles to colors; Theme derives ready-to-use styles

package theme

import "github.com/charmbracelet/lipgloss"

// Palette maps semantic roles to terminal colors.
type Palette struct {
	Header      lipgloss.Color
	HeaderBg    lipgloss.Color
	Row         lipgloss.Color
	RowAlt      lipgloss.Color
	Selected    lipgloss.Color
	SelectedBg  lipgloss.Color
	Border      lipgloss.Color
	Muted       lipgloss.Color
	Accent      lipgloss.Color
	FilterMatch lipgloss.Color
	StatusText  lipgloss.Color
	StatusBg    lipgloss.Color
}

// Theme holds a named palette and the styles derived from it.
type Theme struct {
	Name    string
	Palette Palette

	Header      lipgloss.Style
	Row         lipgloss.Style
	RowAlt      lipgloss.Style
	Selected    lipgloss.Style
	Border      lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	FilterMatch lipgloss.Style
	Status      lipgloss.Style
}

// DefaultPalette returns the built-in dark palette.
func DefaultPalette() Palette {
	return Palette{
		Header:      lipgloss.Color("15"),
		HeaderBg:    lipgloss.Color("237"),
		Row:         lipgloss.Color("252"),
		RowAlt:      lipgloss.Color("246"),
		Selected:    lipgloss.Color("230"),
		SelectedBg:  lipgloss.Color("24"),
		Border:      lipgloss.Color("240"),
		Muted:       lipgloss.Color("243"),
		Accent:      lipgloss.Color("39"),
		FilterMatch: lipgloss.Color("214"),
		StatusText:  lipgloss.Color("250"),
		StatusBg:    lipgloss.Color("235"),
	}
}

// New derives a Theme from a palette.
func New(name string, p Palette) *Theme {
	return &Theme{
		Name:    name,
		Palette: p,

		Header:      lipgloss.NewStyle().Bold(true).Foreground(p.Header).Background(p.HeaderBg),
		Row:         lipgloss.NewStyle().Foreground(p.Row),
		RowAlt:      lipgloss.NewStyle().Foreground(p.RowAlt),
		Selected:    lipgloss.NewStyle().Foreground(p.Selected).Background(p.SelectedBg),
		Border:      lipgloss.NewStyle().Foreground(p.Border),
		Muted:       lipgloss.NewStyle().Foreground(p.Muted),
		Accent:      lipgloss.NewStyle().Foreground(p.Accent),
		FilterMatch: lipgloss.NewStyle().Bold(true).Foreground(p.FilterMatch),
		Status:      lipgloss.NewStyle().Foreground(p.StatusText).Background(p.StatusBg),
	}
}

// Default returns the built-in theme.
func Default() *Theme {
	return New("default", DefaultPalette())
}
