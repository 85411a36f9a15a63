package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"caseview/pkg/models"
)

func sampleResult() *models.CaseResult {
	return &models.CaseResult{
		BaseURL:  "https://staging.cases.example.com",
		AuthMode: "client-credentials",
		Config:   map[string]string{"environment": "staging"},
		CaseDetails: &models.CaseDetails{
			CaseID:  "CASE-7",
			Status:  "open",
			Subject: "export test",
		},
	}
}

func TestMarshalResultContainsFields(t *testing.T) {
	got := MarshalResult(sampleResult())
	for _, want := range []string{`"base_url"`, `"case_id"`, "CASE-7", `"config"`} {
		if !strings.Contains(got, want) {
			t.Errorf("MarshalResult output missing %s", want)
		}
	}
	if !strings.Contains(got, "\n") {
		t.Error("MarshalResult output is not indented")
	}
}

func TestWriteResultFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	path, err := WriteResultFile(sampleResult(), dir, now)
	if err != nil {
		t.Fatalf("WriteResultFile: %v", err)
	}

	if filepath.Base(path) != "case-result-20250314-092653.json" {
		t.Errorf("filename = %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "CASE-7") {
		t.Error("written file missing result content")
	}
}

func TestWriteResultFileBadDir(t *testing.T) {
	_, err := WriteResultFile(sampleResult(), filepath.Join(t.TempDir(), "missing", "deeper"), time.Now())
	if err == nil {
		t.Error("WriteResultFile into missing directory succeeded")
	}
}
