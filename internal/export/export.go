// Package export serializes case results for the raw-data view, the
// clipboard, and the timestamped file download. Serialization failure is
// never fatal: callers get a diagnostic placeholder and rendering
// continues.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/bytedance/sonic"

	"caseview/internal/logging"
	"caseview/pkg/models"
)

// MarshalResult renders the result payload as formatted JSON. On failure
// it returns a diagnostic placeholder instead of an error so the raw-data
// view always has something to show.
func MarshalResult(result *models.CaseResult) string {
	data, err := sonic.MarshalIndent(result, "", "  ")
	if err != nil {
		logging.Debugf("export: marshal result: %v", err)
		return fmt.Sprintf("<result could not be serialized: %v>", err)
	}
	return string(data)
}

// WriteResultFile serializes the result and writes it to dir under a
// timestamped filename. It returns the path of the written file.
func WriteResultFile(result *models.CaseResult, dir string, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	name := fmt.Sprintf("case-result-%s.json", now.Format("20060102-150405"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(MarshalResult(result)+"\n"), 0644); err != nil {
		return "", fmt.Errorf("write result file: %w", err)
	}
	return path, nil
}

// CopyText places text on the system clipboard. This is a fire-and-forget
// side effect: failures are logged and reported as a non-blocking notice,
// never as a fatal error.
func CopyText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		logging.Debugf("export: clipboard write: %v", err)
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
