package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultYAML renders the built-in defaults as a YAML document suitable
// for seeding a fresh config file.
func DefaultYAML() ([]byte, error) {
	doc := map[string]interface{}{
		"engine": map[string]interface{}{
			"environment":    "staging",
			"client_id":      "",
			"simulator_pace": 0.25,
		},
		"tui": map[string]interface{}{
			"refresh_rate": "1s",
			"export_dir":   "",
		},
		"steps": []map[string]interface{}{
			{"id": "validating", "label": "Validating credentials", "estimated_ms": 2000},
			{"id": "authenticating", "label": "Authenticating", "estimated_ms": 5000},
			{"id": "fetching-case-data", "label": "Fetching case data", "estimated_ms": 8000},
			{"id": "processing-results", "label": "Processing results", "estimated_ms": 4000},
			{"id": "complete", "label": "Complete", "estimated_ms": 0},
		},
		"state": map[string]interface{}{
			"db_path": "",
		},
		"logging": map[string]interface{}{
			"debug_log": "",
		},
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling default config: %w", err)
	}
	return out, nil
}

// WriteDefault writes the default config to the user config path. It
// refuses to overwrite an existing file.
func WriteDefault() (string, error) {
	path := GetUserConfigPath()
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	data, err := DefaultYAML()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}
	return path, nil
}
