package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"caseview/pkg/models"
)

// Simulator is a local engine double. It walks the configured step
// sequence, emits realtime updates with paced delays, and produces a
// canned result payload. It is used for demo runs and for exercising the
// UI without a live backend.
type Simulator struct {
	steps  []models.StepSpec
	pace   float64
	events chan Event

	cancelOnce sync.Once
	cancelled  chan struct{}
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithPace scales the per-step delays. 1.0 sleeps the full declared step
// duration; 0 runs the session without delays (used in tests).
func WithPace(pace float64) SimulatorOption {
	return func(s *Simulator) {
		s.pace = pace
	}
}

// NewSimulator creates a simulator over the given step sequence.
func NewSimulator(steps []models.StepSpec, opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		steps:     steps,
		pace:      0.25,
		events:    make(chan Event, 16),
		cancelled: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Events returns the channel the simulator emits on. It is closed when Run
// returns.
func (s *Simulator) Events() <-chan Event {
	return s.events
}

// Cancel signals the running session to stop. Safe to call more than once
// and before Run.
func (s *Simulator) Cancel() {
	s.cancelOnce.Do(func() {
		close(s.cancelled)
	})
}

// Run executes a simulated processing session. Already-emitted updates are
// never retracted on cancellation; the session simply stops producing.
func (s *Simulator) Run(ctx context.Context, req Request) error {
	defer close(s.events)

	startedAt := time.Now()
	sessionID := uuid.NewString()

	if err := validateRequest(req); err != nil {
		s.emit(Event{Type: EventError, Err: &Error{Message: err.Error(), Context: "validating request"}})
		return err
	}

	s.emit(Event{Type: EventInitialized})

	updateCount := 0
	emitUpdate := func(step models.ProcessingStep, level models.UpdateLevel, msg string) {
		u := models.NewUpdate(step, level, msg)
		updateCount++
		s.emit(Event{Type: EventUpdate, Update: &u})
	}

	for _, spec := range s.steps {
		if spec.Step == models.StepComplete {
			break
		}
		emitUpdate(spec.Step, models.LevelInfo, spec.Label+"...")
		if err := s.sleep(ctx, spec.Estimated); err != nil {
			emitUpdate(spec.Step, models.LevelWarning, "processing cancelled")
			return err
		}
		emitUpdate(spec.Step, models.LevelSuccess, spec.Label+" done")
	}

	emitUpdate(models.StepComplete, models.LevelSuccess, "Processing complete")
	s.emit(Event{Type: EventResult, Result: s.cannedResult(req, sessionID, startedAt, updateCount)})
	return nil
}

// sleep waits for the paced share of d, or returns early on cancellation.
func (s *Simulator) sleep(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * s.pace)
	if scaled <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.cancelled:
			return context.Canceled
		default:
			return nil
		}
	}

	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.cancelled:
		return context.Canceled
	case <-timer.C:
		return nil
	}
}

func (s *Simulator) emit(ev Event) {
	select {
	case s.events <- ev:
	case <-s.cancelled:
	}
}

func (s *Simulator) cannedResult(req Request, sessionID string, startedAt time.Time, updateCount int) *models.CaseResult {
	env := strings.ToLower(req.Environment)
	baseURL := fmt.Sprintf("https://%s.cases.example.com", env)

	return &models.CaseResult{
		BaseURL:   baseURL,
		AuthMode:  "client-credentials",
		TokenHint: "sim-...-" + sessionID[:4],
		Config: map[string]string{
			"environment": env,
			"client_id":   req.ClientID,
			"grant_type":  "client_credentials",
			"timeout":     "30s",
		},
		CaseDetails: &models.CaseDetails{
			CaseID:      "CASE-" + strings.ToUpper(sessionID[:8]),
			Status:      "in-review",
			Subject:     "Simulated case lookup",
			Priority:    "normal",
			LastUpdated: startedAt.UTC().Format(time.RFC3339),
			Notes:       []string{"generated by the local simulator"},
		},
		OAuthToken: &models.OAuthToken{
			AccessToken: "sim." + uuid.NewString() + "." + uuid.NewString(),
			TokenType:   "Bearer",
			ExpiresAt:   time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
			ExpiresIn:   3600,
		},
		ProcessingMetadata: &models.ProcessingMetadata{
			SessionID:   sessionID,
			Environment: env,
			StartedAt:   startedAt,
			Duration:    time.Since(startedAt),
			UpdateCount: updateCount,
		},
	}
}

func validateRequest(req Request) error {
	switch {
	case strings.TrimSpace(req.Environment) == "":
		return fmt.Errorf("environment is required")
	case strings.TrimSpace(req.ClientID) == "":
		return fmt.Errorf("client id is required")
	case strings.TrimSpace(req.ClientSecret) == "":
		return fmt.Errorf("client secret is required")
	default:
		return nil
	}
}
