package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const routeBoardFile = "routeboard.yaml"

// LoadRouteBoard loads routing board configuration.
// Search order: customPath -> ~/.routeboard/configs/routeboard.yaml -> ./configs/routeboard.yaml -> embedded default
func LoadRouteBoard(customPath string) (RouteBoardConfig, error) {
	cfg := DefaultRouteBoardConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		cfg.normalize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(routeBoardFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", routeBoardFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRouteBoardYAML, &cfg); err != nil {
		return DefaultRouteBoardConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.normalize()
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or malformed files are skipped.
func tryLoad(path string) (RouteBoardConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RouteBoardConfig{}, false
	}
	cfg := DefaultRouteBoardConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RouteBoardConfig{}, false
	}
	cfg.normalize()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".routeboard", "configs", filename)
}
