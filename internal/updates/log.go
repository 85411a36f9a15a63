// Package updates maintains the realtime event history produced by the
// processing engine. The log is append-only and unbounded; display layers
// bound what they render through Recent.
package updates

import (
	"sync"

	"caseview/pkg/models"
)

// Log is an append-only, ordered buffer of realtime updates. A fresh Log
// is created at the start of each processing session; entries are never
// mutated or reordered after append.
type Log struct {
	mu      sync.RWMutex
	entries []models.RealtimeUpdate
}

// NewLog creates an empty update log.
func NewLog() *Log {
	return &Log{}
}

// Append adds an update to the end of the sequence.
func (l *Log) Append(u models.RealtimeUpdate) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, u)
}

// Latest returns the most recently appended update, if any.
func (l *Log) Latest() (models.RealtimeUpdate, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.entries) == 0 {
		return models.RealtimeUpdate{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Recent returns up to n updates in reverse-chronological order, most
// recent first.
func (l *Log) Recent(n int) []models.RealtimeUpdate {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n <= 0 || len(l.entries) == 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]models.RealtimeUpdate, n)
	for i := 0; i < n; i++ {
		out[i] = l.entries[len(l.entries)-1-i]
	}
	return out
}

// Len returns the number of recorded updates.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// All returns a copy of the full history in arrival order.
func (l *Log) All() []models.RealtimeUpdate {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.RealtimeUpdate, len(l.entries))
	copy(out, l.entries)
	return out
}
