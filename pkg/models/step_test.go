package models

import "testing"

func TestProcessingStepValid(t *testing.T) {
	tests := []struct {
		step ProcessingStep
		want bool
	}{
		{StepValidating, true},
		{StepAuthenticating, true},
		{StepFetchingCase, true},
		{StepProcessingResults, true},
		{StepComplete, true},
		{"", false},
		{"reticulating-splines", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.step), func(t *testing.T) {
			if got := tt.step.Valid(); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.step, got, tt.want)
			}
		})
	}
}

func TestDefaultStepsOrder(t *testing.T) {
	steps := DefaultSteps()
	if len(steps) != 5 {
		t.Fatalf("DefaultSteps() len = %d, want 5", len(steps))
	}
	if steps[0].Step != StepValidating {
		t.Errorf("first step = %s, want validating", steps[0].Step)
	}
	if steps[len(steps)-1].Step != StepComplete {
		t.Errorf("last step = %s, want complete", steps[len(steps)-1].Step)
	}
	if steps[len(steps)-1].Estimated != 0 {
		t.Errorf("complete step duration = %v, want 0", steps[len(steps)-1].Estimated)
	}
}
