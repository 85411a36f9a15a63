// Package engine defines the boundary to the external case-status
// processing engine. The engine is consumed as an event source: it accepts
// credentials and emits initialized, realtime-update, result and error
// events over a channel until the session reaches a terminal state.
package engine

import (
	"context"

	"caseview/pkg/models"
)

// Request carries the credentials a processing session runs with.
type Request struct {
	// Environment selects the backend environment (e.g. staging, prod).
	Environment string
	// ClientID is the OAuth client identifier.
	ClientID string
	// ClientSecret is the OAuth client secret.
	ClientSecret string
}

// EventType identifies an engine event.
type EventType string

const (
	// EventInitialized signals the engine is ready and the session started.
	EventInitialized EventType = "initialized"
	// EventUpdate carries a realtime progress update.
	EventUpdate EventType = "realtime-update"
	// EventResult carries the terminal result payload.
	EventResult EventType = "result"
	// EventError carries a failure report.
	EventError EventType = "error"
)

// Event is one message emitted by the engine. Exactly one of the payload
// fields is set, selected by Type.
type Event struct {
	Type   EventType
	Update *models.RealtimeUpdate
	Result *models.CaseResult
	Err    *Error
}

// Error is a failure reported by the engine.
type Error struct {
	// Message is the human-readable failure description.
	Message string
	// Context names the operation that failed.
	Context string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Message
	}
	return e.Message
}

// Engine is the processing engine consumed by the UI. Run blocks until the
// session reaches a terminal state (result, error or cancellation) and the
// events channel is closed. Cancel is a one-way signal; it never rolls back
// updates that were already emitted.
type Engine interface {
	Run(ctx context.Context, req Request) error
	Events() <-chan Event
	Cancel()
}
