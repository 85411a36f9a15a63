package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"caseview/internal/updates"
	"caseview/pkg/models"
)

// recentUpdateCap bounds how many updates the panel renders. The log
// itself is unbounded; only the display is truncated.
const recentUpdateCap = 10

// UpdatesPanel renders the most recent realtime updates.
type UpdatesPanel struct {
	titleStyle   lipgloss.Style
	timeStyle    lipgloss.Style
	infoStyle    lipgloss.Style
	warnStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
}

// NewUpdatesPanel creates a new UpdatesPanel.
func NewUpdatesPanel() *UpdatesPanel {
	return &UpdatesPanel{
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		timeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		infoStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		warnStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		successStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")),
	}
}

// View renders the recent updates, most recent first.
func (p *UpdatesPanel) View(log *updates.Log) string {
	if log == nil || log.Len() == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("  " + p.titleStyle.Render("Recent updates") + "\n")
	for _, u := range log.Recent(recentUpdateCap) {
		ts := p.timeStyle.Render(u.Timestamp.Format("15:04:05"))
		b.WriteString("  " + ts + " " + p.levelStyle(u.Level).Render(u.Message) + "\n")
	}
	return b.String()
}

func (p *UpdatesPanel) levelStyle(level models.UpdateLevel) lipgloss.Style {
	switch level {
	case models.LevelWarning:
		return p.warnStyle
	case models.LevelError:
		return p.errorStyle
	case models.LevelSuccess:
		return p.successStyle
	default:
		return p.infoStyle
	}
}
