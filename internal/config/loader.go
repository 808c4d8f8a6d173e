package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.arcade/configs/flappy.{yaml,toml} ->
// ./configs/flappy.yaml -> embedded default.
// Files only need to name the values they override.
func Load(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{
		userConfigPath("flappy.yaml"),
		userConfigPath("flappy.toml"),
		filepath.Join("configs", "flappy.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), nil
	}
	return cfg, cfg.Validate()
}

// loadFile decodes a config file over the built-in defaults.
// The format is chosen by extension: .toml uses TOML, anything else YAML.
func loadFile(path string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := Decode(path, data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode parses data into cfg using the format implied by name.
func Decode(name string, data []byte, cfg *FlappyConfig) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", name, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", name, err)
		}
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
