package tui

import (
	"github.com/charmbracelet/lipgloss"

	"caseview/internal/tabs"
)

// TabBar renders the available result tabs and highlights the active one.
// Selection state lives in the tab resolver; the bar is a pure view over
// the resolver's available set and active tab.
type TabBar struct {
	activeStyle   lipgloss.Style
	inactiveStyle lipgloss.Style
	barStyle      lipgloss.Style
}

// NewTabBar creates a new TabBar.
func NewTabBar() TabBar {
	return TabBar{
		activeStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 2),

		inactiveStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 2),

		barStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("238")),
	}
}

// View renders the tab bar for the given available set and active tab.
func (t TabBar) View(available []tabs.Tab, active tabs.Tab) string {
	var renderedTabs []string

	for _, tab := range available {
		if tab == active {
			renderedTabs = append(renderedTabs, t.activeStyle.Render(tab.Label()))
		} else {
			renderedTabs = append(renderedTabs, t.inactiveStyle.Render(tab.Label()))
		}
	}

	return t.barStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...))
}
