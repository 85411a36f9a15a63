package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"caseview/internal/export"
	"caseview/internal/tabs"
	"caseview/internal/token"
	"caseview/pkg/models"
)

// ResultView renders the content of the active result tab.
type ResultView struct {
	width  int
	height int

	keyStyle     lipgloss.Style
	valueStyle   lipgloss.Style
	expiredStyle lipgloss.Style
	soonStyle    lipgloss.Style
	lowStyle     lipgloss.Style
	validStyle   lipgloss.Style
	noteStyle    lipgloss.Style
}

// NewResultView creates a new ResultView.
func NewResultView() *ResultView {
	return &ResultView{
		width:  80,
		height: 24,

		keyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(16),
		valueStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")),
		expiredStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		soonStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true),
		lowStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")),
		validStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")),
		noteStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// SetSize sets the view dimensions.
func (v *ResultView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// View renders the content for the active tab. The switch over the tab set
// is exhaustive; an unknown tab renders nothing.
func (v *ResultView) View(active tabs.Tab, result *models.CaseResult, remaining token.TimeRemaining) string {
	if result == nil {
		return ""
	}
	switch active {
	case tabs.TabCaseDetails:
		return v.caseDetails(result)
	case tabs.TabTokenStatus:
		return v.tokenStatus(result, remaining)
	case tabs.TabConfiguration:
		return v.configuration(result)
	case tabs.TabRawData:
		return v.rawData(result)
	default:
		return ""
	}
}

func (v *ResultView) row(key, value string) string {
	return "  " + v.keyStyle.Render(key) + v.valueStyle.Render(value) + "\n"
}

func (v *ResultView) caseDetails(result *models.CaseResult) string {
	d := result.CaseDetails
	if d == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(v.row("Case ID", d.CaseID))
	b.WriteString(v.row("Status", d.Status))
	b.WriteString(v.row("Subject", d.Subject))
	if d.Priority != "" {
		b.WriteString(v.row("Priority", d.Priority))
	}
	if d.LastUpdated != "" {
		b.WriteString(v.row("Last updated", d.LastUpdated))
	}
	for _, note := range d.Notes {
		b.WriteString("  " + v.noteStyle.Render("· "+note) + "\n")
	}
	return b.String()
}

func (v *ResultView) tokenStatus(result *models.CaseResult, remaining token.TimeRemaining) string {
	tok := result.OAuthToken
	if tok == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(v.row("Token", token.Mask(tok.AccessToken)))
	b.WriteString(v.row("Type", tok.TokenType))
	b.WriteString(v.row("Expires at", tok.ExpiresAt))
	b.WriteString(v.row("Expires", v.countdown(remaining)))
	b.WriteString("\n  " + v.noteStyle.Render("c: copy full token") + "\n")
	return b.String()
}

// countdown renders the live countdown with tier-driven urgency styling.
func (v *ResultView) countdown(remaining token.TimeRemaining) string {
	tier := remaining.Tier()
	if tier == token.TierExpired {
		return v.expiredStyle.Render("EXPIRED")
	}

	text := fmt.Sprintf("%02dh %02dm %02ds", remaining.Hours, remaining.Minutes, remaining.Seconds)
	if remaining.Days > 0 {
		text = fmt.Sprintf("%dd %s", remaining.Days, text)
	}

	switch tier {
	case token.TierExpiringSoon:
		return v.soonStyle.Render(text + " (expiring soon)")
	case token.TierValidLow:
		return v.lowStyle.Render(text)
	default:
		return v.validStyle.Render(text)
	}
}

func (v *ResultView) configuration(result *models.CaseResult) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(v.row("Base URL", result.BaseURL))
	b.WriteString(v.row("Auth mode", result.AuthMode))
	if result.TokenHint != "" {
		b.WriteString(v.row("Token hint", result.TokenHint))
	}

	keys := make([]string, 0, len(result.Config))
	for k := range result.Config {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(v.row(k, result.Config[k]))
	}
	return b.String()
}

// rawData renders the serialized payload, truncated to the view height.
func (v *ResultView) rawData(result *models.CaseResult) string {
	lines := strings.Split(export.MarshalResult(result), "\n")

	max := v.height - 8
	if max < 4 {
		max = 4
	}
	truncated := false
	if len(lines) > max {
		lines = lines[:max]
		truncated = true
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString("  " + line + "\n")
	}
	if truncated {
		b.WriteString("  " + v.noteStyle.Render("… (e: export full result to file)") + "\n")
	}
	return b.String()
}
