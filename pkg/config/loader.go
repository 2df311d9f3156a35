package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidPosition = errors.New("tabs.position must be top or bottom")

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	applyDefaults(&cfg)
	if cfg.Tabs.Position != "top" && cfg.Tabs.Position != "bottom" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPosition, cfg.Tabs.Position)
	}
	return &cfg, nil
}

// LoadOrDefault loads path, returning the defaults when the file does not
// exist. Other read or parse errors are returned.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// SaveConfig writes the config to the specified path
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Theme == "" {
		cfg.Theme = "auto"
	}
	if cfg.Tabs.Position == "" {
		cfg.Tabs.Position = "top"
	}
	if cfg.Tabs.Gutter <= 0 {
		cfg.Tabs.Gutter = 1
	}
	if cfg.Tabs.ActiveBg == "" {
		cfg.Tabs.ActiveBg = "#3498db"
	}
	if cfg.Tabs.Divider == "" {
		cfg.Tabs.Divider = "─"
	}
	if cfg.Badge.Bg == "" {
		cfg.Badge.Bg = "#e74c3c"
	}
	if cfg.Badge.OverflowCount <= 0 {
		cfg.Badge.OverflowCount = 99
	}
	if cfg.Fields.LabelWidth <= 0 {
		cfg.Fields.LabelWidth = 16
	}
	if cfg.Fields.ErrorFg == "" {
		cfg.Fields.ErrorFg = "#e74c3c"
	}
	if cfg.Fields.FocusFg == "" {
		cfg.Fields.FocusFg = "#f39c12"
	}
	if cfg.Bindings.NextTab == "" {
		cfg.Bindings.NextTab = "ctrl+right"
	}
	if cfg.Bindings.PrevTab == "" {
		cfg.Bindings.PrevTab = "ctrl+left"
	}
	if cfg.Bindings.NextField == "" {
		cfg.Bindings.NextField = "tab"
	}
	if cfg.Bindings.PrevField == "" {
		cfg.Bindings.PrevField = "shift+tab"
	}
	if cfg.Bindings.Submit == "" {
		cfg.Bindings.Submit = "ctrl+s"
	}
	if cfg.Bindings.Reset == "" {
		cfg.Bindings.Reset = "ctrl+r"
	}
	if cfg.Bindings.Quit == "" {
		cfg.Bindings.Quit = "ctrl+c"
	}
}
