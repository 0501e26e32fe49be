package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-directory override file, typically kept
// next to the scripts that call clack.
const LocalConfigFileName = ".clack.toml"

// LocalConfig holds per-directory overrides from .clack.toml.
// Pointer fields and zero-value strings indicate "not set" (inherit from global).
type LocalConfig struct {
	raw rawConfig
}

// LoadLocal reads a .clack.toml config from dir.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(dir string) (*LocalConfig, error) {
	configFile := filepath.Join(dir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configFile, err)
	}
	if err := raw.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configFile, err)
	}
	return &LocalConfig{raw: raw}, nil
}
