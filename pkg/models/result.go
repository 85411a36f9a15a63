package models

import "time"

// OAuthToken holds the token material returned by a successful
// authentication. ExpiresAt is kept as the raw string the engine produced;
// parsing is deferred to the countdown layer so a malformed value degrades
// to the expired state instead of failing the whole result.
type OAuthToken struct {
	// AccessToken is the full bearer token. Display layers must mask it.
	AccessToken string `json:"access_token"`
	// TokenType is the OAuth token type, typically "Bearer".
	TokenType string `json:"token_type"`
	// ExpiresAt is the wall-clock expiration instant as reported.
	ExpiresAt string `json:"expires_at"`
	// ExpiresIn is the reported lifetime in seconds. Informational only;
	// the countdown derives from ExpiresAt.
	ExpiresIn int `json:"expires_in"`
}

// CaseDetails holds the case record returned by the lookup.
type CaseDetails struct {
	// CaseID is the external case identifier.
	CaseID string `json:"case_id"`
	// Status is the case lifecycle state as reported by the backend.
	Status string `json:"status"`
	// Subject is the case title line.
	Subject string `json:"subject"`
	// Priority is the backend-assigned priority label.
	Priority string `json:"priority,omitempty"`
	// LastUpdated is the backend's last-modified timestamp string.
	LastUpdated string `json:"last_updated,omitempty"`
	// Notes are free-form annotations attached to the case.
	Notes []string `json:"notes,omitempty"`
}

// ProcessingMetadata summarizes the session that produced a result.
type ProcessingMetadata struct {
	// SessionID identifies the processing session.
	SessionID string `json:"session_id"`
	// Environment is the environment the session ran against.
	Environment string `json:"environment"`
	// StartedAt is when the session began.
	StartedAt time.Time `json:"started_at"`
	// Duration is the total wall-clock time of the session.
	Duration time.Duration `json:"duration"`
	// UpdateCount is the number of realtime updates emitted.
	UpdateCount int `json:"update_count"`
}

// CaseResult is the terminal payload of a processing session. CaseDetails,
// OAuthToken and ProcessingMetadata are optional; result views decide their
// availability from which fields are present.
type CaseResult struct {
	// BaseURL is the backend API base the engine resolved.
	BaseURL string `json:"base_url"`
	// AuthMode is the authentication mode that was used.
	AuthMode string `json:"auth_mode"`
	// TokenHint is a short, already-masked token preview from the engine.
	TokenHint string `json:"token_hint,omitempty"`
	// Config is the effective engine configuration key/value set.
	Config map[string]string `json:"config"`
	// CaseDetails is the case record, when the lookup succeeded.
	CaseDetails *CaseDetails `json:"case_details,omitempty"`
	// OAuthToken is the issued token, when authentication succeeded.
	OAuthToken *OAuthToken `json:"oauth_token,omitempty"`
	// ProcessingMetadata describes the producing session.
	ProcessingMetadata *ProcessingMetadata `json:"processing_metadata,omitempty"`
}

// HasCaseDetails reports whether the result carries a case record.
func (r *CaseResult) HasCaseDetails() bool {
	return r != nil && r.CaseDetails != nil
}

// HasToken reports whether the result carries a usable token.
func (r *CaseResult) HasToken() bool {
	return r != nil && r.OAuthToken != nil && r.OAuthToken.AccessToken != ""
}
