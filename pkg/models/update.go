package models

import (
	"time"

	"github.com/google/uuid"
)

// UpdateLevel represents the severity of a realtime update.
type UpdateLevel string

const (
	// LevelInfo is a routine progress message.
	LevelInfo UpdateLevel = "info"
	// LevelWarning is a non-fatal anomaly.
	LevelWarning UpdateLevel = "warning"
	// LevelError is a failure report from the engine.
	LevelError UpdateLevel = "error"
	// LevelSuccess marks a step or session completing.
	LevelSuccess UpdateLevel = "success"
)

// Valid returns true if the level is a known value.
func (l UpdateLevel) Valid() bool {
	switch l {
	case LevelInfo, LevelWarning, LevelError, LevelSuccess:
		return true
	default:
		return false
	}
}

// RealtimeUpdate is one progress event emitted by the processing engine.
// Updates are immutable after creation; ordering is arrival order.
type RealtimeUpdate struct {
	// ID is unique within a processing session.
	ID string `json:"id"`
	// Timestamp is the wall-clock instant the update was produced.
	Timestamp time.Time `json:"timestamp"`
	// Step is the processing step the update belongs to.
	Step ProcessingStep `json:"step"`
	// Message is the human-readable update text.
	Message string `json:"message"`
	// Level is the update severity.
	Level UpdateLevel `json:"level"`
}

// NewUpdate creates a RealtimeUpdate stamped with a fresh ID and the
// current wall-clock time.
func NewUpdate(step ProcessingStep, level UpdateLevel, message string) RealtimeUpdate {
	return RealtimeUpdate{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Step:      step,
		Message:   message,
		Level:     level,
	}
}
