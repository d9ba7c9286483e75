// ABOUTME: Entry point for the Bubble Tea table viewer
// ABOUTME: Creates the tea.Program with alt screen and mouse support, blocks until exit

package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the table viewer. Blocks until the user exits.
func Run(deps AppDeps) error {
	m := NewAppModel(deps)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
