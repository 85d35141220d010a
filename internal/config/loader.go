package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in configuration in Load results.
const SourceEmbedded = "embedded defaults"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.invasion/configs/invasion.yaml -> ./configs/invasion.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error. Files
// found in the implicit locations are skipped if broken.
func Load(customPath string) (InvasionConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return InvasionConfig{}, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("invasion.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "invasion.yaml")); err == nil {
		return cfg, filepath.Join("configs", "invasion.yaml"), nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultInvasionYAML)
	if err != nil {
		return DefaultInvasionConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the defaults and validates the result, so a
// file only needs to mention the values it changes.
func Parse(data []byte) (InvasionConfig, error) {
	cfg := DefaultInvasionConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvasionConfig{}, fmt.Errorf("config: cannot parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return InvasionConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg InvasionConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode YAML: %w", err)
	}
	return data, nil
}

// loadFile reads and parses a single config file.
func loadFile(path string) (InvasionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InvasionConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return InvasionConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invasion", "configs", filename)
}
