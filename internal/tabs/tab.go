// Package tabs computes which result views apply to a case result and keeps
// the active selection consistent with that set across result changes and
// restored preferences.
package tabs

import "caseview/pkg/models"

// Tab identifies one result view.
type Tab string

const (
	// TabCaseDetails shows the case record. Requires case details.
	TabCaseDetails Tab = "case-details"
	// TabTokenStatus shows the token countdown. Requires a token.
	TabTokenStatus Tab = "token-status"
	// TabConfiguration shows the effective engine configuration.
	TabConfiguration Tab = "configuration"
	// TabRawData shows the serialized result payload.
	TabRawData Tab = "raw-data"
)

// DefaultTab is the sentinel selection when no tab is available.
const DefaultTab = TabConfiguration

// PreferenceKey is the durable key the active tab is persisted under.
const PreferenceKey = "active_result_tab"

// allTabs is the fixed configured tab set in declared order.
var allTabs = []Tab{TabCaseDetails, TabTokenStatus, TabConfiguration, TabRawData}

// All returns the fixed configured tab set in declared order.
func All() []Tab {
	out := make([]Tab, len(allTabs))
	copy(out, allTabs)
	return out
}

// Valid returns true if the tab is a known value.
func (t Tab) Valid() bool {
	switch t {
	case TabCaseDetails, TabTokenStatus, TabConfiguration, TabRawData:
		return true
	default:
		return false
	}
}

// Label returns the display name for the tab.
func (t Tab) Label() string {
	switch t {
	case TabCaseDetails:
		return "Case Details"
	case TabTokenStatus:
		return "Token Status"
	case TabConfiguration:
		return "Configuration"
	case TabRawData:
		return "Raw Data"
	default:
		return string(t)
	}
}

// availableFor is the availability predicate for one tab over a result
// payload. Configuration and raw-data are unconditional; the other two
// require their optional result field.
func (t Tab) availableFor(result *models.CaseResult) bool {
	switch t {
	case TabCaseDetails:
		return result.HasCaseDetails()
	case TabTokenStatus:
		return result.HasToken()
	case TabConfiguration, TabRawData:
		return true
	default:
		return false
	}
}

// Available filters the configured tab set by each tab's availability
// predicate, preserving declared order.
func Available(result *models.CaseResult) []Tab {
	out := make([]Tab, 0, len(allTabs))
	for _, t := range allTabs {
		if t.availableFor(result) {
			out = append(out, t)
		}
	}
	return out
}
