package colors

import (
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// ThemeMode selects how the terminal background is determined.
type ThemeMode string

const (
	ThemeModeAuto  ThemeMode = "auto"
	ThemeModeDark  ThemeMode = "dark"
	ThemeModeLight ThemeMode = "light"
)

// BackgroundDetector decides whether the terminal background is dark.
type BackgroundDetector struct {
	mode   ThemeMode
	getenv func(string) string
	query  func() (isDark, ok bool)
	cached *bool
}

// NewBackgroundDetector creates a detector for mode.
func NewBackgroundDetector(mode ThemeMode) *BackgroundDetector {
	return &BackgroundDetector{mode: mode, getenv: os.Getenv, query: queryTermenv}
}

// IsDarkBackground returns true if the background is dark. Auto detection
// tries COLORFGBG, then an OSC query through termenv, then profile hints,
// and assumes dark when nothing answers.
func (d *BackgroundDetector) IsDarkBackground() bool {
	if d.cached != nil {
		return *d.cached
	}
	isDark := true
	switch d.mode {
	case ThemeModeDark:
	case ThemeModeLight:
		isDark = false
	default:
		if v, ok := d.fromCOLORFGBG(); ok {
			isDark = v
		} else if v, ok := d.query(); ok {
			isDark = v
		} else if v, ok := d.fromHints(); ok {
			isDark = v
		}
	}
	d.cached = &isDark
	return isDark
}

// COLORFGBG is "fg;bg" in ANSI indexes; 0-7 are dark backgrounds.
func (d *BackgroundDetector) fromCOLORFGBG() (bool, bool) {
	parts := strings.Split(d.getenv("COLORFGBG"), ";")
	if len(parts) < 2 {
		return false, false
	}
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false, false
	}
	return bg < 8 || bg == 16, true
}

func (d *BackgroundDetector) fromHints() (bool, bool) {
	profile := strings.ToLower(d.getenv("ITERM_PROFILE"))
	switch {
	case strings.Contains(profile, "light"):
		return false, true
	case strings.Contains(profile, "dark"):
		return true, true
	}
	return false, false
}

// queryTermenv asks the terminal directly. This does not work inside tmux
// or screen, which do not forward OSC 11.
func queryTermenv() (bool, bool) {
	output := termenv.NewOutput(os.Stdout)
	bg := output.BackgroundColor()
	if bg == nil {
		return false, false
	}
	if _, ok := bg.(termenv.NoColor); ok {
		return false, false
	}
	return output.HasDarkBackground(), true
}
