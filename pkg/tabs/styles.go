package tabs

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/b/form-tabs/pkg/colors"
	"github.com/b/form-tabs/pkg/config"
)

// Styles holds the lipgloss styles the panel draws with.
type Styles struct {
	Active    lipgloss.Style
	Inactive  lipgloss.Style
	Disabled  lipgloss.Style
	Badge     lipgloss.Style
	Divider   lipgloss.Style
	Indicator lipgloss.Style

	DividerRune   string
	OverflowCount int
}

// DefaultStyles are used when no config is supplied.
func DefaultStyles() Styles {
	cfg := config.Default()
	return NewStyles(cfg, colors.Resolve(cfg, colors.NewBackgroundDetector(colors.ThemeModeDark)))
}

// NewStyles builds styles from the config and its resolved palette.
func NewStyles(cfg *config.Config, p colors.Palette) Styles {
	active := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.ActiveFg)).
		Background(lipgloss.Color(p.ActiveBg)).
		Bold(true).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.InactiveFg)).
		Padding(0, 1)
	if p.InactiveBg != "" {
		inactive = inactive.Background(lipgloss.Color(p.InactiveBg))
	}
	return Styles{
		Active:        active,
		Inactive:      inactive,
		Disabled:      inactive.Faint(true),
		Badge:         lipgloss.NewStyle().Foreground(lipgloss.Color(p.BadgeFg)).Background(lipgloss.Color(p.BadgeBg)).Bold(true).Padding(0, 1),
		Divider:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.DividerFg)),
		Indicator:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.MutedFg)),
		DividerRune:   cfg.Tabs.Divider,
		OverflowCount: cfg.Badge.OverflowCount,
	}
}

// badgeText caps count at the overflow limit, rendering e.g. "99+".
func (s Styles) badgeText(count int) string {
	if s.OverflowCount > 0 && count > s.OverflowCount {
		return strconv.Itoa(s.OverflowCount) + "+"
	}
	return strconv.Itoa(count)
}
