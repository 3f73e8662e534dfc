package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const match3File = "match3.yaml"

// LoadMatch3 loads the match-3 configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml -> ./configs/match3.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
func LoadMatch3(customPath string) (Match3Config, error) {
	cfg := DefaultMatch3Config()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if path := userConfigPath(match3File); path != "" {
		if c, ok := tryLoad(path); ok {
			return c, nil
		}
	}

	if c, ok := tryLoad(filepath.Join("configs", match3File)); ok {
		return c, nil
	}

	embedded := DefaultMatch3Config()
	if err := yaml.Unmarshal(defaultMatch3YAML, &embedded); err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped so the next location in the search order is tried.
func tryLoad(path string) (Match3Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Match3Config{}, false
	}
	cfg := DefaultMatch3Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Match3Config{}, false
	}
	if cfg.Validate() != nil {
		return Match3Config{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}
