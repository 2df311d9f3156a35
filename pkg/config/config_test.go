package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "tabs:\n  active_bg: \"#112233\"\nbadge:\n  overflow_count: 9\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Tabs.ActiveBg != "#112233" {
		t.Errorf("ActiveBg = %q", cfg.Tabs.ActiveBg)
	}
	if cfg.Badge.OverflowCount != 9 {
		t.Errorf("OverflowCount = %d", cfg.Badge.OverflowCount)
	}
	if cfg.Tabs.Position != "top" || cfg.Badge.Bg != "#e74c3c" || cfg.Bindings.NextTab != "ctrl+right" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigRejectsPosition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tabs:\n  position: left\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("err = %v, want ErrInvalidPosition", err)
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Fields.LabelWidth != 16 {
		t.Errorf("LabelWidth = %d, want 16", cfg.Fields.LabelWidth)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Tabs.Position = "bottom"
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Tabs.Position != "bottom" {
		t.Errorf("Position = %q, want bottom", got.Tabs.Position)
	}
}

func TestWatchReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: dark\n"), 0644); err != nil {
		t.Fatal(err)
	}
	changed := make(chan string, 4)
	stop, err := Watch(func(p string) { changed <- p }, path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("theme: light\n"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case p := <-changed:
		if p != path {
			t.Errorf("path = %q, want %q", p, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change event")
	}
}

func TestWatchSurvivesRenameReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("theme: dark\n"), 0644); err != nil {
		t.Fatal(err)
	}
	changed := make(chan string, 64)
	stop, err := Watch(func(p string) { changed <- p }, path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	replace := func(body string) {
		t.Helper()
		tmp := filepath.Join(dir, ".config.yaml.swp")
		if err := os.WriteFile(tmp, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.Rename(tmp, path); err != nil {
			t.Fatal(err)
		}
	}
	waitFor := func(round int) {
		t.Helper()
		deadline := time.After(2 * time.Second)
		for {
			select {
			case p := <-changed:
				if p == path {
					return
				}
				t.Fatalf("round %d: event for %q, want only %q", round, p, path)
			case <-deadline:
				t.Fatalf("round %d: no change event", round)
			}
		}
	}

	for round := 1; round <= 2; round++ {
		replace(fmt.Sprintf("theme: light\n# %d\n", round))
		waitFor(round)
	}
}
