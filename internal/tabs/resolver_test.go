package tabs

import (
	"errors"
	"testing"

	"caseview/pkg/models"
)

func fullResult() *models.CaseResult {
	return &models.CaseResult{
		BaseURL:  "https://api.example.test",
		AuthMode: "client-credentials",
		Config:   map[string]string{"environment": "staging"},
		CaseDetails: &models.CaseDetails{
			CaseID: "CASE-1042",
			Status: "open",
		},
		OAuthToken: &models.OAuthToken{
			AccessToken: "eyJhbGciOiJSUzI1NiJ9.abcdef",
			TokenType:   "Bearer",
			ExpiresAt:   "2099-01-01T00:00:00Z",
			ExpiresIn:   3600,
		},
	}
}

func bareResult() *models.CaseResult {
	return &models.CaseResult{
		BaseURL:  "https://api.example.test",
		AuthMode: "client-credentials",
		Config:   map[string]string{"environment": "staging"},
	}
}

func TestAvailableTabs(t *testing.T) {
	tests := []struct {
		name   string
		result *models.CaseResult
		want   []Tab
	}{
		{"full result", fullResult(), []Tab{TabCaseDetails, TabTokenStatus, TabConfiguration, TabRawData}},
		{"bare result", bareResult(), []Tab{TabConfiguration, TabRawData}},
		{
			"token only",
			&models.CaseResult{OAuthToken: &models.OAuthToken{AccessToken: "tok-abcdefgh"}},
			[]Tab{TabTokenStatus, TabConfiguration, TabRawData},
		},
		{
			"empty access token is not a token",
			&models.CaseResult{OAuthToken: &models.OAuthToken{}},
			[]Tab{TabConfiguration, TabRawData},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Available(tt.result)
			if len(got) != len(tt.want) {
				t.Fatalf("Available() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Available()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestInitWithoutPreference(t *testing.T) {
	r := NewResolver(NewMemoryStore())
	if got := r.Init(bareResult()); got != TabConfiguration {
		t.Errorf("initial tab = %s, want configuration", got)
	}
}

func TestInitRestoresValidPreference(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Set(PreferenceKey, string(TabRawData)); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(store)
	if got := r.Init(fullResult()); got != TabRawData {
		t.Errorf("initial tab = %s, want raw-data", got)
	}
}

func TestInitCorrectsStalePreference(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Set(PreferenceKey, string(TabTokenStatus)); err != nil {
		t.Fatal(err)
	}

	// The result has no token, so the persisted preference is stale.
	r := NewResolver(store)
	if got := r.Init(bareResult()); got != TabConfiguration {
		t.Errorf("initial tab = %s, want first available (configuration)", got)
	}

	// The correction is written back.
	stored, err := store.Get(PreferenceKey)
	if err != nil {
		t.Fatal(err)
	}
	if stored != string(TabConfiguration) {
		t.Errorf("persisted tab = %s, want configuration", stored)
	}
}

func TestReconcileKeepsStillAvailableTab(t *testing.T) {
	r := NewResolver(NewMemoryStore())
	r.Init(fullResult())
	r.Activate(TabRawData)

	if got := r.Reconcile(bareResult()); got != TabRawData {
		t.Errorf("tab after reconcile = %s, want raw-data", got)
	}
}

func TestReconcileResetsUnavailableTab(t *testing.T) {
	store := NewMemoryStore()
	r := NewResolver(store)
	r.Init(fullResult())
	r.Activate(TabCaseDetails)

	// The new result lost its case details; the selection falls back.
	if got := r.Reconcile(bareResult()); got != TabConfiguration {
		t.Errorf("tab after reconcile = %s, want configuration", got)
	}
	stored, _ := store.Get(PreferenceKey)
	if stored != string(TabConfiguration) {
		t.Errorf("persisted tab = %s, want configuration", stored)
	}
}

func TestActivatePersistsChange(t *testing.T) {
	store := NewMemoryStore()
	r := NewResolver(store)
	r.Init(fullResult())

	r.Activate(TabTokenStatus)
	stored, _ := store.Get(PreferenceKey)
	if stored != string(TabTokenStatus) {
		t.Errorf("persisted tab = %s, want token-status", stored)
	}
}

func TestActivateRejectsUnavailableTab(t *testing.T) {
	r := NewResolver(NewMemoryStore())
	r.Init(bareResult())

	if got := r.Activate(TabCaseDetails); got != TabConfiguration {
		t.Errorf("tab = %s, want configuration unchanged", got)
	}
}

func TestKeyboardWrapAround(t *testing.T) {
	r := NewResolver(NewMemoryStore())
	r.Init(fullResult())
	r.First()

	// ArrowLeft from the first tab wraps to the last.
	if got := r.Prev(); got != TabRawData {
		t.Errorf("Prev() from first = %s, want raw-data", got)
	}

	// ArrowRight from the last tab wraps to the first.
	if got := r.Next(); got != TabCaseDetails {
		t.Errorf("Next() from last = %s, want case-details", got)
	}

	r.Activate(TabConfiguration)
	if got := r.First(); got != TabCaseDetails {
		t.Errorf("First() = %s, want case-details", got)
	}
	if got := r.Last(); got != TabRawData {
		t.Errorf("Last() = %s, want raw-data", got)
	}
}

func TestKeyboardSkipsUnavailableTabs(t *testing.T) {
	r := NewResolver(NewMemoryStore())
	r.Init(bareResult())

	// Only configuration and raw-data exist; movement never lands on the
	// unavailable tabs.
	if got := r.Next(); got != TabRawData {
		t.Errorf("Next() = %s, want raw-data", got)
	}
	if got := r.Next(); got != TabConfiguration {
		t.Errorf("Next() wrap = %s, want configuration", got)
	}
}

type failingStore struct{}

func (failingStore) Get(string) (string, error) { return "", errors.New("store offline") }
func (failingStore) Set(string, string) error   { return errors.New("store offline") }

func TestStoreFailureDoesNotBreakSelection(t *testing.T) {
	r := NewResolver(failingStore{})
	if got := r.Init(fullResult()); got != TabCaseDetails {
		t.Errorf("initial tab = %s, want first available", got)
	}
	if got := r.Next(); got != TabTokenStatus {
		t.Errorf("Next() = %s, want token-status", got)
	}
}
