package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the bubbletea program for the app.
func NewProgram(app *App) *tea.Program {
	return tea.NewProgram(app, tea.WithAltScreen())
}
