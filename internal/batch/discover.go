package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const fixtureExt = ".json"

// Discover lists the fixtures in eventsDir: every regular .json file, by name, without
// its extension.
func Discover(eventsDir string) ([]string, error) {
	entries, err := os.ReadDir(eventsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read events directory: %w", err)
	}

	var fixtures []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != fixtureExt {
			continue
		}
		fixtures = append(fixtures, strings.TrimSuffix(entry.Name(), fixtureExt))
	}
	return fixtures, nil
}

// Filter keeps the fixture equal to name. An empty name keeps everything.
func Filter(fixtures []string, name string) []string {
	if name == "" {
		return fixtures
	}
	for _, f := range fixtures {
		if f == name {
			return []string{f}
		}
	}
	return nil
}
