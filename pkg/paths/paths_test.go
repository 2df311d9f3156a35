package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestDirs(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("FORM_TABS_CONFIG_DIR", "")
	t.Setenv("FORM_TABS_STATE_DIR", "")
	t.Setenv("HOME", tmp)
	ResetForTest()
	return tmp
}

func TestConfigDir_EnvOverride(t *testing.T) {
	tmp := setupTestDirs(t)
	override := filepath.Join(tmp, "custom-config")
	t.Setenv("FORM_TABS_CONFIG_DIR", override)
	ResetForTest()

	if got := ConfigDir(); got != override {
		t.Errorf("ConfigDir() = %q, want %q", got, override)
	}
}

func TestDefaults(t *testing.T) {
	tmp := setupTestDirs(t)
	tests := []struct {
		name string
		got  func() string
		want string
	}{
		{"config dir", ConfigDir, filepath.Join(tmp, ".config", "form-tabs")},
		{"state dir", StateDir, filepath.Join(tmp, ".local", "state", "form-tabs")},
		{"config path", ConfigPath, filepath.Join(tmp, ".config", "form-tabs", "config.yaml")},
		{"state path", func() string { return StatePath("debug.log") }, filepath.Join(tmp, ".local", "state", "form-tabs", "debug.log")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStateDir_EnvOverride(t *testing.T) {
	tmp := setupTestDirs(t)
	override := filepath.Join(tmp, "custom-state")
	t.Setenv("FORM_TABS_STATE_DIR", override)
	ResetForTest()

	if got := StateDir(); got != override {
		t.Errorf("StateDir() = %q, want %q", got, override)
	}
}

func TestEnsureStateDir_Creates(t *testing.T) {
	tmp := setupTestDirs(t)
	expected := filepath.Join(tmp, ".local", "state", "form-tabs")

	dir, err := EnsureStateDir()
	if err != nil {
		t.Fatalf("EnsureStateDir() error: %v", err)
	}
	if dir != expected {
		t.Errorf("EnsureStateDir() = %q, want %q", dir, expected)
	}
	info, err := os.Stat(expected)
	if err != nil || !info.IsDir() {
		t.Errorf("EnsureStateDir() did not create directory %q", expected)
	}
}
