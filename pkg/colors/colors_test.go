package colors

import (
	"math"
	"testing"

	"github.com/b/form-tabs/pkg/config"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name     string
		hexColor string
		want     float64
		delta    float64
	}{
		{"black", "#000000", 0.0, 0.001},
		{"white", "#ffffff", 1.0, 0.001},
		{"mid gray", "#808080", 0.2159, 0.01},
		{"pure green", "#00ff00", 0.7152, 0.01},
		{"invalid", "nope", 0.0, 0.001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.hexColor)
			if math.Abs(got-tt.want) > tt.delta {
				t.Errorf("Luminance(%q) = %v, want %v", tt.hexColor, got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	if got := ContrastRatio("#000000", "#ffffff"); math.Abs(got-21) > 0.1 {
		t.Errorf("black on white = %v, want 21", got)
	}
	if got := ContrastRatio("#808080", "#808080"); math.Abs(got-1) > 0.01 {
		t.Errorf("same colour = %v, want 1", got)
	}
}

func TestTextOn(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{"#e74c3c", "#ffffff"},
		{"#000000", "#ffffff"},
		{"#ffffff", "#000000"},
		{"#f1c40f", "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.bg, func(t *testing.T) {
			if got := TextOn(tt.bg); got != tt.want {
				t.Errorf("TextOn(%q) = %q, want %q", tt.bg, got, tt.want)
			}
		})
	}
}

func TestEnsureContrast(t *testing.T) {
	got := EnsureContrast("#777777", "#ffffff", 4.5)
	if ContrastRatio(got, "#ffffff") < 4.5 {
		t.Errorf("EnsureContrast returned %q with ratio %v", got, ContrastRatio(got, "#ffffff"))
	}
	if got := EnsureContrast("#000000", "#ffffff", 4.5); got != "#000000" {
		t.Errorf("already readable colour changed to %q", got)
	}
}

func TestLightenDarken(t *testing.T) {
	if got := Lighten("#000000", 1.0); got != "#ffffff" {
		t.Errorf("Lighten = %q", got)
	}
	if got := Darken("#ffffff", 1.0); got != "#000000" {
		t.Errorf("Darken = %q", got)
	}
	if got := Darken("bad", 0.5); got != "bad" {
		t.Errorf("Darken(bad) = %q", got)
	}
}

func fakeDetector(mode ThemeMode, env map[string]string, query func() (bool, bool)) *BackgroundDetector {
	d := NewBackgroundDetector(mode)
	d.getenv = func(k string) string { return env[k] }
	d.query = query
	return d
}

func noAnswer() (bool, bool) { return false, false }

func TestBackgroundDetector(t *testing.T) {
	tests := []struct {
		name  string
		mode  ThemeMode
		env   map[string]string
		query func() (bool, bool)
		want  bool
	}{
		{"forced light", ThemeModeLight, nil, noAnswer, false},
		{"forced dark", ThemeModeDark, map[string]string{"COLORFGBG": "0;15"}, noAnswer, true},
		{"colorfgbg light", ThemeModeAuto, map[string]string{"COLORFGBG": "0;15"}, noAnswer, false},
		{"colorfgbg dark", ThemeModeAuto, map[string]string{"COLORFGBG": "15;0"}, noAnswer, true},
		{"osc query", ThemeModeAuto, nil, func() (bool, bool) { return false, true }, false},
		{"iterm hint", ThemeModeAuto, map[string]string{"ITERM_PROFILE": "Solarized Light"}, noAnswer, false},
		{"fallback dark", ThemeModeAuto, nil, noAnswer, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := fakeDetector(tt.mode, tt.env, tt.query)
			if got := d.IsDarkBackground(); got != tt.want {
				t.Errorf("IsDarkBackground() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	cfg := config.Default()
	p := Resolve(cfg, fakeDetector(ThemeModeDark, nil, noAnswer))
	if p.BadgeBg != "#e74c3c" || p.BadgeFg != "#ffffff" {
		t.Errorf("badge = %s on %s", p.BadgeFg, p.BadgeBg)
	}
	if p.ActiveFg != TextOn(cfg.Tabs.ActiveBg) {
		t.Errorf("ActiveFg = %s", p.ActiveFg)
	}
	if p.InactiveFg != "#888888" {
		t.Errorf("InactiveFg = %s, want muted dark-theme grey", p.InactiveFg)
	}

	light := Resolve(cfg, fakeDetector(ThemeModeLight, nil, noAnswer))
	if light.LabelFg != "#333333" {
		t.Errorf("light LabelFg = %s", light.LabelFg)
	}
}
