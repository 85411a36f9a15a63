// Package version exposes the caseview release version.
package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var versionContent string

// Get returns the caseview version with surrounding whitespace trimmed.
func Get() string {
	return strings.TrimSpace(versionContent)
}
