package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"caseview/internal/engine"
)

// Field indexes within the credential form.
const (
	fieldEnvironment = iota
	fieldClientID
	fieldClientSecret
	fieldCount
)

// CredentialForm collects the environment and OAuth client credentials.
type CredentialForm struct {
	inputs  []textinput.Model
	focused int
	errMsg  string
	width   int

	labelStyle lipgloss.Style
	errStyle   lipgloss.Style
	hintStyle  lipgloss.Style
}

// NewCredentialForm creates the form, pre-filling environment and client
// id from configuration.
func NewCredentialForm(environment, clientID string) *CredentialForm {
	env := textinput.New()
	env.Placeholder = "staging"
	env.SetValue(environment)
	env.CharLimit = 64
	env.Width = 40
	env.Focus()

	id := textinput.New()
	id.Placeholder = "client id"
	id.SetValue(clientID)
	id.CharLimit = 128
	id.Width = 40

	secret := textinput.New()
	secret.Placeholder = "client secret"
	secret.CharLimit = 256
	secret.Width = 40
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '•'

	return &CredentialForm{
		inputs:  []textinput.Model{env, id, secret},
		focused: fieldEnvironment,
		width:   80,

		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		errStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// SetWidth sets the form width.
func (f *CredentialForm) SetWidth(width int) {
	f.width = width
}

// Update handles key input for the form.
func (f *CredentialForm) Update(msg tea.Msg) (*CredentialForm, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			f.setFocus((f.focused + 1) % fieldCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focused - 1 + fieldCount) % fieldCount)
			return f, nil
		case "enter":
			req := f.request()
			if msg := f.validate(req); msg != "" {
				f.errMsg = msg
				return f, nil
			}
			f.errMsg = ""
			return f, func() tea.Msg {
				return CredentialsSubmittedMsg{Request: req}
			}
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return f, cmd
}

// View renders the form.
func (f *CredentialForm) View() string {
	labels := []string{"Environment", "Client ID", "Client Secret"}

	var b strings.Builder
	b.WriteString("\n")
	for i, input := range f.inputs {
		b.WriteString("  " + f.labelStyle.Render(labels[i]) + "\n")
		b.WriteString("  " + input.View() + "\n\n")
	}

	if f.errMsg != "" {
		b.WriteString("  " + f.errStyle.Render("✗ "+f.errMsg) + "\n\n")
	}
	b.WriteString("  " + f.hintStyle.Render("tab: next field • enter: start • ctrl+c: quit") + "\n")
	return b.String()
}

func (f *CredentialForm) request() engine.Request {
	return engine.Request{
		Environment:  strings.TrimSpace(f.inputs[fieldEnvironment].Value()),
		ClientID:     strings.TrimSpace(f.inputs[fieldClientID].Value()),
		ClientSecret: strings.TrimSpace(f.inputs[fieldClientSecret].Value()),
	}
}

// validate applies the non-empty field checks. It returns an empty string
// when the request is submittable.
func (f *CredentialForm) validate(req engine.Request) string {
	switch {
	case req.Environment == "":
		return "environment is required"
	case req.ClientID == "":
		return "client id is required"
	case req.ClientSecret == "":
		return "client secret is required"
	default:
		return ""
	}
}

func (f *CredentialForm) setFocus(i int) {
	f.inputs[f.focused].Blur()
	f.focused = i
	f.inputs[f.focused].Focus()
}
