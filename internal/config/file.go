package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File holds user preferences read from config.yaml. Phase durations are
// deliberately absent: they are fixed at compile time.
type File struct {
	Theme    string `yaml:"theme"`
	History  bool   `yaml:"history"`
	LogLevel string `yaml:"log_level"`
	DBPath   string `yaml:"db_path"`
}

// Defaults returns the preferences used when no config file exists.
func Defaults() File {
	return File{
		Theme:    "default",
		History:  true,
		LogLevel: "info",
	}
}

type yamlFile struct {
	Theme    string `yaml:"theme"`
	History  *bool  `yaml:"history"`
	LogLevel string `yaml:"log_level"`
	DBPath   string `yaml:"db_path"`
}

// Load reads the YAML config at path. A missing file yields Defaults.
func Load(path string) (File, error) {
	cfg := Defaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var data yamlFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}
	apply(&cfg, data)
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	serialized, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func apply(cfg *File, data yamlFile) {
	if v := strings.TrimSpace(data.Theme); v != "" {
		cfg.Theme = v
	}
	if data.History != nil {
		cfg.History = *data.History
	}
	if v := strings.TrimSpace(data.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(data.DBPath); v != "" {
		cfg.DBPath = v
	}
}
