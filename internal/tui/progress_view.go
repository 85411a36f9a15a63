package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"caseview/internal/progress"
	"caseview/pkg/models"
)

// ProgressView renders the step checklist, progress bar and ETA during
// processing.
type ProgressView struct {
	steps []models.StepSpec
	width int

	doneStyle    lipgloss.Style
	currentStyle lipgloss.Style
	pendingStyle lipgloss.Style
	barStyle     lipgloss.Style
	etaStyle     lipgloss.Style
}

// NewProgressView creates a view over the configured step sequence.
func NewProgressView(steps []models.StepSpec) *ProgressView {
	return &ProgressView{
		steps: steps,
		width: 80,

		doneStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")),
		currentStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		pendingStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		barStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")),
		etaStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
	}
}

// SetWidth sets the view width.
func (v *ProgressView) SetWidth(width int) {
	v.width = width
}

// View renders the progress display for the given snapshot.
func (v *ProgressView) View(snap progress.Snapshot) string {
	var b strings.Builder
	b.WriteString("\n")

	currentOrdinal := -1
	for i, spec := range v.steps {
		if spec.Step == snap.Step {
			currentOrdinal = i
			break
		}
	}

	for i, spec := range v.steps {
		var line string
		switch {
		case currentOrdinal >= 0 && i < currentOrdinal:
			line = v.doneStyle.Render("  ✓ " + spec.Label)
		case i == currentOrdinal:
			line = v.currentStyle.Render("  ▶ " + spec.Label)
		default:
			line = v.pendingStyle.Render("  ○ " + spec.Label)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n  " + v.renderBar(snap.Percent) + fmt.Sprintf(" %3d%%\n", snap.Percent))
	b.WriteString("  " + v.etaStyle.Render(
		fmt.Sprintf("elapsed %s • remaining %s", formatDuration(snap.Elapsed), formatDuration(snap.Remaining)),
	) + "\n")
	return b.String()
}

// renderBar draws a fixed-width percentage bar.
func (v *ProgressView) renderBar(percent int) string {
	const barWidth = 40
	filled := percent * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return v.barStyle.Render(bar)
}
