package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"caseview/internal/engine"
	"caseview/internal/export"
	"caseview/internal/progress"
	"caseview/internal/tabs"
	"caseview/internal/token"
	"caseview/internal/updates"
	"caseview/pkg/models"
)

// phase is the UI lifecycle stage.
type phase int

const (
	phaseCredentials phase = iota
	phaseProcessing
	phaseResult
	phaseError
	phaseCancelled
)

// Options configures the App.
type Options struct {
	// Steps is the configured processing step sequence.
	Steps []models.StepSpec
	// Store persists the active result tab.
	Store tabs.PreferenceStore
	// NewEngine creates the processing engine for one session. Engines
	// are single-use; a fresh one is created per submitted request.
	NewEngine func() engine.Engine
	// RefreshRate is the tick interval for both one-second timers.
	RefreshRate time.Duration
	// ExportDir is where result files are written.
	ExportDir string
	// DefaultEnvironment pre-fills the environment field.
	DefaultEnvironment string
	// DefaultClientID pre-fills the client id field.
	DefaultClientID string
}

// App is the main bubbletea model for the caseview TUI.
type App struct {
	opts Options

	phase phase

	form     *CredentialForm
	progView *ProgressView
	updPanel *UpdatesPanel
	tabBar   TabBar
	resView  *ResultView

	// Session state. engine, tracker and log are recreated per session.
	engine   engine.Engine
	events   <-chan engine.Event
	tracker  *progress.Tracker
	log      *updates.Log
	snapshot progress.Snapshot

	// Result state.
	result    *models.CaseResult
	resolver  *tabs.Resolver
	clock     *token.Clock
	remaining token.TimeRemaining

	// progressTicking and tokenTicking guard the two independent timers:
	// a tick command is only re-issued while its flag is set, so clearing
	// the flag releases the timer.
	progressTicking bool
	tokenTicking    bool

	errMsg   string
	notice   string
	noticeID int
	width    int
	height   int
	quitting bool

	titleStyle  lipgloss.Style
	noticeStyle lipgloss.Style
	errStyle    lipgloss.Style
	hintStyle   lipgloss.Style
}

// New creates a new App.
func New(opts Options) *App {
	if opts.RefreshRate <= 0 {
		opts.RefreshRate = time.Second
	}
	return &App{
		opts:     opts,
		phase:    phaseCredentials,
		form:     NewCredentialForm(environmentDefault(opts), clientIDDefault(opts)),
		progView: NewProgressView(opts.Steps),
		updPanel: NewUpdatesPanel(),
		tabBar:   NewTabBar(),
		resView:  NewResultView(),
		resolver: tabs.NewResolver(opts.Store),

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1),
		noticeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")),
		errStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form.SetWidth(msg.Width)
		a.progView.SetWidth(msg.Width)
		a.resView.SetSize(msg.Width, msg.Height)

	case CredentialsSubmittedMsg:
		return a, a.startSession(msg.Request)

	case EngineInitializedMsg:
		// Ready signal only; the first realtime update drives the step.
		return a, a.waitForEvent()

	case UpdateMsg:
		if a.log != nil {
			a.log.Append(msg.Update)
		}
		if a.tracker != nil && a.phase == phaseProcessing {
			a.tracker.SetStep(msg.Update.Step)
		}
		return a, a.waitForEvent()

	case ResultMsg:
		return a, tea.Batch(a.applyResult(msg.Result), a.waitForEvent())

	case EngineErrorMsg:
		return a, tea.Batch(a.applyEngineError(msg), a.waitForEvent())

	case engineClosedMsg:
		// The event stream ended; the terminal event already moved the
		// phase, so there is nothing left to apply.

	case EngineDoneMsg:
		// Run returned; terminal state arrived through the event stream.

	case ConfigReloadedMsg:
		if msg.RefreshRate > 0 {
			a.opts.RefreshRate = msg.RefreshRate
		}

	case progressTickMsg:
		return a, a.applyProgressTick(time.Time(msg))

	case tokenTickMsg:
		return a, a.applyTokenTick(time.Time(msg))

	case noticeExpiredMsg:
		if msg.id == a.noticeID {
			a.notice = ""
		}
	}

	if a.phase == phaseCredentials {
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleKey routes key input by phase.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		a.teardown()
		a.quitting = true
		return a, tea.Quit
	}

	switch a.phase {
	case phaseCredentials:
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd

	case phaseProcessing:
		if msg.String() == "esc" {
			return a, a.cancelSession()
		}

	case phaseResult:
		return a.handleResultKey(msg)

	case phaseError, phaseCancelled:
		switch msg.String() {
		case "q":
			a.quitting = true
			return a, tea.Quit
		case "n":
			a.resetToForm()
		}
	}
	return a, nil
}

// handleResultKey implements keyboard navigation over the available tabs.
// Movement operates only over the available set; selection and focus move
// together, and every change is persisted by the resolver.
func (a *App) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "right", "tab":
		a.resolver.Next()
	case "left", "shift+tab":
		a.resolver.Prev()
	case "home":
		a.resolver.First()
	case "end":
		a.resolver.Last()
	case "enter", " ":
		// Activates the focused tab; focus does not move further.
		a.resolver.Activate(a.resolver.Active())
	case "c":
		return a, a.copyToken()
	case "e":
		return a, a.exportResult()
	case "n":
		a.resetToForm()
	case "q":
		a.quitting = true
		return a, tea.Quit
	}
	return a, nil
}

// startSession begins a processing session: fresh engine, fresh tracker,
// fresh update log, and the elapsed-time sampler acquired for the duration
// of the active phase.
func (a *App) startSession(req engine.Request) tea.Cmd {
	a.phase = phaseProcessing
	a.errMsg = ""
	a.notice = ""

	a.engine = a.opts.NewEngine()
	a.events = a.engine.Events()

	a.tracker = progress.NewTracker(a.opts.Steps)
	a.tracker.Start(time.Now())
	if len(a.opts.Steps) > 0 {
		a.tracker.SetStep(a.opts.Steps[0].Step)
	}
	a.log = updates.NewLog()
	a.snapshot = a.tracker.Sample(time.Now())

	a.progressTicking = true
	return tea.Batch(a.runEngine(a.engine, req), a.waitForEvent(), a.progressTickCmd())
}

// runEngine executes the engine in the background; events arrive through
// the waitForEvent chain. This command only reports run completion.
func (a *App) runEngine(eng engine.Engine, req engine.Request) tea.Cmd {
	return func() tea.Msg {
		return EngineDoneMsg{Err: eng.Run(context.Background(), req)}
	}
}

// waitForEvent blocks on the session's event channel and converts the next
// engine event into a message. The command re-arms itself through the
// Update handlers until the channel closes.
func (a *App) waitForEvent() tea.Cmd {
	ch := a.events
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			event, ok := <-ch
			if !ok {
				return engineClosedMsg{}
			}
			switch event.Type {
			case engine.EventInitialized:
				return EngineInitializedMsg{}
			case engine.EventUpdate:
				if event.Update != nil {
					return UpdateMsg{Update: *event.Update}
				}
			case engine.EventResult:
				if event.Result != nil {
					return ResultMsg{Result: event.Result}
				}
			case engine.EventError:
				if event.Err != nil {
					return EngineErrorMsg{Message: event.Err.Message, Context: event.Err.Context}
				}
			}
		}
	}
}

// applyResult handles the terminal result event: stop the sampler, compute
// tab availability (reconciling against any earlier result), and acquire
// the token countdown when a token is present.
func (a *App) applyResult(result *models.CaseResult) tea.Cmd {
	first := a.result == nil
	changed := a.result != result
	a.result = result

	if a.tracker != nil {
		a.tracker.SetStep(models.StepComplete)
		a.snapshot = a.tracker.Sample(time.Now())
		a.tracker.Stop()
	}
	a.progressTicking = false
	a.phase = phaseResult

	// Availability is recomputed on result identity change only.
	if first {
		a.resolver.Init(result)
	} else if changed {
		a.resolver.Reconcile(result)
	}

	if result.HasToken() {
		a.clock = token.NewClock(result.OAuthToken.ExpiresAt)
		a.remaining = a.clock.Remaining(time.Now())
		if !a.tokenTicking {
			a.tokenTicking = true
			return a.tokenTickCmd()
		}
		return nil
	}

	a.clock = nil
	a.remaining = token.TimeRemaining{IsExpired: true}
	a.tokenTicking = false
	return nil
}

func (a *App) applyEngineError(msg EngineErrorMsg) tea.Cmd {
	// An error after the result is displayed is a non-fatal notice, not a
	// phase change.
	if a.phase == phaseResult {
		return a.showNotice("engine: " + msg.Message)
	}

	if a.tracker != nil {
		a.tracker.Stop()
	}
	a.progressTicking = false
	a.phase = phaseError
	if msg.Context != "" {
		a.errMsg = fmt.Sprintf("%s: %s", msg.Context, msg.Message)
	} else {
		a.errMsg = msg.Message
	}
	return nil
}

// applyProgressTick samples elapsed time once per second while the
// session is active. The tick chain stops as soon as the guard is false.
func (a *App) applyProgressTick(now time.Time) tea.Cmd {
	if !a.progressTicking || a.tracker == nil {
		return nil
	}
	if !a.tracker.Active() {
		a.progressTicking = false
		return nil
	}
	a.snapshot = a.tracker.Sample(now)
	return a.progressTickCmd()
}

// applyTokenTick recomputes the countdown once per second while a token
// is on display.
func (a *App) applyTokenTick(now time.Time) tea.Cmd {
	if !a.tokenTicking || a.clock == nil || a.phase != phaseResult {
		a.tokenTicking = false
		return nil
	}
	a.remaining = a.clock.Remaining(now)
	return a.tokenTickCmd()
}

func (a *App) progressTickCmd() tea.Cmd {
	return tea.Tick(a.opts.RefreshRate, func(t time.Time) tea.Msg {
		return progressTickMsg(t)
	})
}

func (a *App) tokenTickCmd() tea.Cmd {
	return tea.Tick(a.opts.RefreshRate, func(t time.Time) tea.Msg {
		return tokenTickMsg(t)
	})
}

// cancelSession sends the one-way cancel signal. Recorded updates stay.
func (a *App) cancelSession() tea.Cmd {
	if a.engine != nil {
		a.engine.Cancel()
	}
	if a.tracker != nil {
		a.tracker.Stop()
	}
	a.progressTicking = false
	a.phase = phaseCancelled
	return nil
}

// copyToken places the full token on the clipboard. This is the only path
// that exposes the unmasked value.
func (a *App) copyToken() tea.Cmd {
	if a.resolver.Active() != tabs.TabTokenStatus || !a.result.HasToken() {
		return nil
	}
	if err := export.CopyText(a.result.OAuthToken.AccessToken); err != nil {
		return a.showNotice("clipboard unavailable")
	}
	return a.showNotice("token copied to clipboard")
}

func (a *App) exportResult() tea.Cmd {
	if a.result == nil {
		return nil
	}
	path, err := export.WriteResultFile(a.result, a.opts.ExportDir, time.Now())
	if err != nil {
		return a.showNotice("export failed: " + err.Error())
	}
	return a.showNotice("exported to " + path)
}

// showNotice displays a transient status line for a few seconds.
func (a *App) showNotice(text string) tea.Cmd {
	a.notice = text
	a.noticeID++
	id := a.noticeID
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

// resetToForm returns to the credential form for a fresh session. Both
// timers are released; the update log is abandoned with its session.
func (a *App) resetToForm() {
	a.teardown()
	a.phase = phaseCredentials
	a.result = nil
	a.tracker = nil
	a.log = nil
	a.engine = nil
	a.events = nil
	a.errMsg = ""
	a.notice = ""
	a.resolver = tabs.NewResolver(a.opts.Store)
	a.form = NewCredentialForm(environmentDefault(a.opts), clientIDDefault(a.opts))
}

// teardown releases both timers unconditionally and signals any running
// engine to stop.
func (a *App) teardown() {
	a.progressTicking = false
	a.tokenTicking = false
	a.clock = nil
	if a.engine != nil {
		a.engine.Cancel()
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var body string
	switch a.phase {
	case phaseCredentials:
		body = a.form.View()

	case phaseProcessing:
		body = a.progView.View(a.snapshot) + "\n" + a.updPanel.View(a.log) +
			"\n  " + a.hintStyle.Render("esc: cancel • ctrl+c: quit")

	case phaseResult:
		body = a.tabBar.View(a.resolver.Available(), a.resolver.Active()) + "\n" +
			a.resView.View(a.resolver.Active(), a.result, a.remaining) +
			"\n  " + a.hintStyle.Render("←/→: switch tab • home/end: first/last • e: export • n: new session • q: quit")

	case phaseError:
		body = "\n  " + a.errStyle.Render("✗ "+a.errMsg) + "\n" + a.updPanel.View(a.log) +
			"\n  " + a.hintStyle.Render("n: new session • q: quit")

	case phaseCancelled:
		body = "\n  " + a.errStyle.Render("processing cancelled") + "\n" + a.updPanel.View(a.log) +
			"\n  " + a.hintStyle.Render("n: new session • q: quit")
	}

	header := a.titleStyle.Render("caseview — case status inspector")
	out := header + "\n" + body
	if a.notice != "" {
		out += "\n  " + a.noticeStyle.Render(a.notice)
	}
	return out
}

func environmentDefault(opts Options) string {
	if opts.DefaultEnvironment != "" {
		return opts.DefaultEnvironment
	}
	return "staging"
}

func clientIDDefault(opts Options) string {
	return opts.DefaultClientID
}
