package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"lambdatest/internal/batch"
)

// SaveJSON writes the summary as an indented JSON document into dir, creating dir when
// needed, and returns the path of the written file.
func SaveJSON(dir string, summary *batch.Summary) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	timestamp := summary.StartTime.Format("20060102-150405")
	filename := fmt.Sprintf("lambdatest-report-%s-%s.json", timestamp, shortID(summary.RunID))
	fullPath := filepath.Join(dir, filename)

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if err := os.WriteFile(fullPath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return fullPath, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
