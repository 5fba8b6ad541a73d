package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config holds the user-level settings for syntour.
//
// Lenient controls the failure-filter demonstration: when a filter declines
// to handle a failure, strict mode (the default) propagates it and the run
// exits non-zero, while lenient mode swallows it after logging and prints
// the closing line.
type Config struct {
	FilePath string `yaml:"-"`

	Lenient bool `yaml:"lenient"`
}

func ConfigFilePath(homeDir string) string {
	return filepath.Join(homeDir, ".syntour", "config.yaml")
}

func Default(homeDir string) *Config {
	cfg := &Config{
		FilePath: ConfigFilePath(homeDir),
	}

	applyEnvOverrides(cfg)

	return cfg
}

func Load(homeDir string) (*Config, error) {
	path := ConfigFilePath(homeDir)

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(homeDir), nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open config file: %s", err)
	}
	defer file.Close()

	var cfg Config
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config from YAML: %s", err)
	}

	applyEnvOverrides(&cfg)

	cfg.FilePath = path

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if lenient := os.Getenv("SYNTOUR_LENIENT"); lenient != "" {
		cfg.Lenient = lenient == "1" || lenient == "true"
	}
}
