package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the agent configuration.
// Search order: customPath -> ~/.twenty48/config.yaml -> ./configs/agents.yaml
// -> embedded default. A bad custom path is an error; the fallbacks are
// silent because they are optional.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		cfg.Sanitize()
		return cfg, nil
	}

	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Sanitize()
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/agents.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Sanitize()
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultAgentsYAML, &cfg); err != nil {
		return Default(), nil
	}
	cfg.Sanitize()
	return cfg, nil
}

// userConfigPath returns the path of a user config file, or empty when the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".twenty48", filename)
}
