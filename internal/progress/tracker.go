// Package progress derives a coherent progress/ETA display from the
// configured step sequence and elapsed wall-clock time. The tracker is a
// pure derivation over its declared inputs at each sample; it owns no timer
// of its own and is sampled once per second by the display layer while the
// session is active.
package progress

import (
	"math"
	"time"

	"caseview/pkg/models"
)

// Snapshot is the derived progress state at one sample instant.
type Snapshot struct {
	// Step is the step the snapshot was derived for.
	Step models.ProcessingStep
	// Elapsed is the wall-clock time since the session started.
	Elapsed time.Duration
	// Percent is the progress percentage, always in [0,100].
	Percent int
	// ETA is the estimated total remaining work at the current step.
	ETA time.Duration
	// Remaining is max(0, ETA - Elapsed), the value shown to the user.
	Remaining time.Duration
}

// Tracker converts the declared step sequence plus elapsed time into
// progress percentage and estimated time remaining. A new Tracker is
// created for every processing session.
type Tracker struct {
	steps    []models.StepSpec
	ordinals map[models.ProcessingStep]int

	current   models.ProcessingStep
	startedAt time.Time
	active    bool

	percentOverride *int
	etaOverride     *time.Duration

	last Snapshot
}

// NewTracker creates a Tracker over the given ordered step sequence.
func NewTracker(steps []models.StepSpec) *Tracker {
	ordinals := make(map[models.ProcessingStep]int, len(steps))
	for i, s := range steps {
		ordinals[s.Step] = i
	}
	return &Tracker{
		steps:    steps,
		ordinals: ordinals,
	}
}

// Start begins a session at the given instant. Sampling is active until
// Stop is called.
func (t *Tracker) Start(now time.Time) {
	t.startedAt = now
	t.active = true
}

// Stop ends sampling. The last computed snapshot is retained for render.
func (t *Tracker) Stop() {
	t.active = false
}

// Active reports whether the tracker is still sampling.
func (t *Tracker) Active() bool {
	return t.active
}

// SetStep records the step the engine is currently on.
func (t *Tracker) SetStep(step models.ProcessingStep) {
	t.current = step
}

// Step returns the step the tracker is currently on.
func (t *Tracker) Step() models.ProcessingStep {
	return t.current
}

// OverridePercent pins the displayed percentage, clamped to [0,100].
func (t *Tracker) OverridePercent(p int) {
	t.percentOverride = &p
}

// OverrideETA pins the displayed estimated time remaining.
func (t *Tracker) OverrideETA(d time.Duration) {
	t.etaOverride = &d
}

// ClearOverrides returns the tracker to step-derived percentage and ETA.
func (t *Tracker) ClearOverrides() {
	t.percentOverride = nil
	t.etaOverride = nil
}

// Sample computes the snapshot for the given instant. When the tracker is
// stopped it returns the last snapshot computed while active, so the final
// values stay on screen.
func (t *Tracker) Sample(now time.Time) Snapshot {
	if !t.active {
		return t.last
	}

	elapsed := now.Sub(t.startedAt)
	if elapsed < 0 {
		elapsed = 0
	}

	eta := t.eta()
	remaining := eta - elapsed
	if remaining < 0 {
		remaining = 0
	}

	t.last = Snapshot{
		Step:      t.current,
		Elapsed:   elapsed,
		Percent:   t.percent(),
		ETA:       eta,
		Remaining: remaining,
	}
	return t.last
}

// percent derives the progress percentage. An unrecognized step is not an
// error; it degrades to zero progress.
func (t *Tracker) percent() int {
	if t.percentOverride != nil {
		return clampPercent(*t.percentOverride)
	}

	ord, ok := t.ordinals[t.current]
	if !ok {
		return 0
	}
	if len(t.steps) < 2 {
		return 100
	}
	return int(math.Round(float64(ord) / float64(len(t.steps)-1) * 100))
}

// eta derives the estimated remaining time: the declared duration of the
// current step plus every step after it. An unrecognized step yields zero.
func (t *Tracker) eta() time.Duration {
	if t.etaOverride != nil {
		return *t.etaOverride
	}

	ord, ok := t.ordinals[t.current]
	if !ok {
		return 0
	}
	var total time.Duration
	for _, s := range t.steps[ord:] {
		total += s.Estimated
	}
	return total
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
