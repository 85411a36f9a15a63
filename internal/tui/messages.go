// Package tui provides the terminal user interface for caseview.
package tui

import (
	"time"

	"caseview/internal/engine"
	"caseview/pkg/models"
)

// EngineInitializedMsg is sent when the engine reports it is ready.
type EngineInitializedMsg struct{}

// UpdateMsg carries one realtime update from the engine.
type UpdateMsg struct {
	Update models.RealtimeUpdate
}

// ResultMsg carries the terminal result payload.
type ResultMsg struct {
	Result *models.CaseResult
}

// EngineErrorMsg carries a failure reported by the engine.
type EngineErrorMsg struct {
	Message string
	Context string
}

// EngineDoneMsg signals that the engine run returned.
type EngineDoneMsg struct {
	Err error
}

// CredentialsSubmittedMsg is sent when the user submits the form.
type CredentialsSubmittedMsg struct {
	Request engine.Request
}

// ConfigReloadedMsg is sent when the config file changes on disk.
type ConfigReloadedMsg struct {
	RefreshRate time.Duration
}

// progressTickMsg drives the once-per-second elapsed-time sampler.
type progressTickMsg time.Time

// tokenTickMsg drives the once-per-second token countdown.
type tokenTickMsg time.Time

// engineClosedMsg signals that the engine's event channel closed.
type engineClosedMsg struct{}

// noticeExpiredMsg clears a transient status notice.
type noticeExpiredMsg struct{ id int }
