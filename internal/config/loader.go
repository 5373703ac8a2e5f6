package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadProfiles loads session tuning.
// Search order: customPath -> ~/.nebula/configs/profiles.yaml -> ./configs/profiles.yaml -> embedded default
//
// Files are decoded over the built-in defaults, so a partial file only overrides
// the keys it names. The result is validated before it is returned.
func LoadProfiles(customPath string) (Profiles, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Profiles{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return decodeProfiles(data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("profiles.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeProfiles(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "profiles.yaml")); err == nil {
		if cfg, err := decodeProfiles(data, "configs/profiles.yaml"); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeProfiles(defaultProfilesYAML, "embedded defaults")
	if err != nil {
		return DefaultProfiles(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeProfiles(data []byte, source string) (Profiles, error) {
	cfg := DefaultProfiles()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Profiles{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Profiles{}, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nebula", "configs", filename)
}
