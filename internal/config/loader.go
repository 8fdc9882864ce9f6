package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// For mocking in tests
var osGetwd = os.Getwd

const packageFileName = "package.json"

// Load reads the configuration from the environment, applying defaults for unset values.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if c.EventsDir == "" {
		return errors.New("events directory must be set")
	}
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if c.LocalBin == "" || c.RemoteBin == "" {
		return errors.New("local and remote executables must be set")
	}
	if c.Inventory != InventoryCLI && c.Inventory != InventorySDK {
		return fmt.Errorf("invalid inventory '%s', must be '%s' or '%s'", c.Inventory, InventoryCLI, InventorySDK)
	}
	if c.Parallel < 0 {
		return fmt.Errorf("parallel must not be negative, got %d", c.Parallel)
	}
	return nil
}

// ResolveStackName returns the prefix used to find deployed functions.
// An explicit StackName wins; otherwise the package.json name is used when
// UsePackageName is set. An empty result means no prefix.
func ResolveStackName(c Config) (string, error) {
	if c.StackName != "" || !c.UsePackageName {
		return c.StackName, nil
	}

	wd, err := osGetwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	return readPackageName(filepath.Join(wd, packageFileName))
}

// readPackageName extracts the name field of a package.json file. Scoped names
// (@scope/name) are reduced to their last segment.
func readPackageName(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var pkg struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if pkg.Name == "" {
		return "", fmt.Errorf("%s has no name field", path)
	}

	name := pkg.Name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name, nil
}
