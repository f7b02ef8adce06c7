package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SummaryConfig controls the frequency summary handed to the planning step.
type SummaryConfig struct {
	TopWords     int `yaml:"top_words"`
	MaxSentences int `yaml:"max_sentences"`
}

// IngestConfig controls which files are read as transcripts.
type IngestConfig struct {
	Extensions []string `yaml:"extensions"`
}

// OutputConfig selects how computed tables are printed.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summary SummaryConfig `yaml:"summary"`
	Ingest  IngestConfig  `yaml:"ingest"`
	Output  OutputConfig  `yaml:"output"`
	// Definitions is an optional default path for concept/dimension definitions.
	Definitions string `yaml:"definitions,omitempty"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./brandradar.yaml first, then ~/.config/brandradar/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "brandradar.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "brandradar", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Summary.TopWords <= 0 {
		cfg.Summary.TopWords = 30
	}
	if cfg.Summary.MaxSentences < 0 {
		cfg.Summary.MaxSentences = 0
	}
	if len(cfg.Ingest.Extensions) == 0 {
		cfg.Ingest.Extensions = []string{".txt"}
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "json"
	}
}
