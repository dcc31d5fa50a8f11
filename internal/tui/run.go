package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tayrics/tayrics/internal/present"
)

// Run starts the TUI application and blocks until the user quits.
func Run(snapshot present.Snapshot, expand bool) error {
	p := tea.NewProgram(NewModel(snapshot, expand), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
