// Package paths resolves where form-tabs keeps its config and state files.
//
// Layout (XDG-style):
//
//	Config:  ~/.config/form-tabs/config.yaml   (override: FORM_TABS_CONFIG_DIR)
//	State:   ~/.local/state/form-tabs/         (override: FORM_TABS_STATE_DIR)
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	configDirOnce   sync.Once
	configDirCached string

	stateDirOnce   sync.Once
	stateDirCached string
)

// ConfigDir resolves the config directory.
// Priority: FORM_TABS_CONFIG_DIR env > ~/.config/form-tabs/
func ConfigDir() string {
	configDirOnce.Do(func() {
		configDirCached = resolve("FORM_TABS_CONFIG_DIR", ".config")
	})
	return configDirCached
}

// StateDir resolves the state directory.
// Priority: FORM_TABS_STATE_DIR env > ~/.local/state/form-tabs/
func StateDir() string {
	stateDirOnce.Do(func() {
		stateDirCached = resolve("FORM_TABS_STATE_DIR", filepath.Join(".local", "state"))
	})
	return stateDirCached
}

func resolve(env, homeRel string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, homeRel, "form-tabs")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StatePath returns the full path to a state file (e.g. "debug.log").
func StatePath(filename string) string {
	return filepath.Join(StateDir(), filename)
}

// EnsureStateDir creates the state directory if it doesn't exist and returns its path.
func EnsureStateDir() (string, error) {
	dir := StateDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create state dir %s: %w", dir, err)
	}
	return dir, nil
}

// ResetForTest clears cached values so tests can re-run resolution logic.
// Only use in tests.
func ResetForTest() {
	configDirOnce = sync.Once{}
	configDirCached = ""
	stateDirOnce = sync.Once{}
	stateDirCached = ""
}
