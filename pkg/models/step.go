package models

import "time"

// ProcessingStep identifies one stage of a case-status processing session.
type ProcessingStep string

const (
	// StepValidating indicates credential fields are being validated.
	StepValidating ProcessingStep = "validating"
	// StepAuthenticating indicates the OAuth token exchange is in progress.
	StepAuthenticating ProcessingStep = "authenticating"
	// StepFetchingCase indicates case data is being retrieved.
	StepFetchingCase ProcessingStep = "fetching-case-data"
	// StepProcessingResults indicates the fetched data is being assembled.
	StepProcessingResults ProcessingStep = "processing-results"
	// StepComplete indicates the session reached its terminal state.
	StepComplete ProcessingStep = "complete"
)

// Valid returns true if the step is a known value.
func (s ProcessingStep) Valid() bool {
	switch s {
	case StepValidating, StepAuthenticating, StepFetchingCase, StepProcessingResults, StepComplete:
		return true
	default:
		return false
	}
}

// StepSpec declares a processing step's position in the sequence and its
// estimated duration. The sequence is immutable configuration, loaded once
// per session.
type StepSpec struct {
	// Step is the step identifier.
	Step ProcessingStep `json:"step"`
	// Label is the human-readable name shown in the progress view.
	Label string `json:"label"`
	// Estimated is the declared expected duration of the step.
	Estimated time.Duration `json:"estimated"`
}

// DefaultSteps returns the built-in ordered step sequence. Ordinal position
// is the index within the returned slice.
func DefaultSteps() []StepSpec {
	return []StepSpec{
		{Step: StepValidating, Label: "Validating credentials", Estimated: 2 * time.Second},
		{Step: StepAuthenticating, Label: "Authenticating", Estimated: 5 * time.Second},
		{Step: StepFetchingCase, Label: "Fetching case data", Estimated: 8 * time.Second},
		{Step: StepProcessingResults, Label: "Processing results", Estimated: 4 * time.Second},
		{Step: StepComplete, Label: "Complete", Estimated: 0},
	}
}
