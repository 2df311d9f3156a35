package config

import (
	"github.com/b/form-tabs/pkg/paths"
)

type Config struct {
	Theme    string   `yaml:"theme"` // auto, dark or light
	Tabs     Tabs     `yaml:"tabs"`
	Badge    Badge    `yaml:"badge"`
	Fields   Fields   `yaml:"fields"`
	Bindings Bindings `yaml:"bindings"`
}

type Tabs struct {
	Position   string `yaml:"position"`    // top or bottom (default: top)
	Gutter     int    `yaml:"gutter"`      // Columns between tabs (default: 1)
	ActiveFg   string `yaml:"active_fg"`   // Active tab text (default: derived from theme)
	ActiveBg   string `yaml:"active_bg"`   // Active tab background (default: #3498db)
	InactiveFg string `yaml:"inactive_fg"` // Inactive tab text (default: derived from theme)
	InactiveBg string `yaml:"inactive_bg"` // Inactive tab background (default: none)
	Divider    string `yaml:"divider"`     // Rule under the tab bar (default: ─)
}

type Badge struct {
	Bg            string `yaml:"bg"`             // Badge background (default: #e74c3c)
	Fg            string `yaml:"fg"`             // Badge text (default: contrast with bg)
	OverflowCount int    `yaml:"overflow_count"` // Counts above this render as N+ (default: 99)
}

type Fields struct {
	LabelWidth int    `yaml:"label_width"` // Label column width (default: 16)
	ErrorFg    string `yaml:"error_fg"`    // Feedback text (default: #e74c3c)
	FocusFg    string `yaml:"focus_fg"`    // Focused label (default: #f39c12)
}

type Bindings struct {
	NextTab   string `yaml:"next_tab"`
	PrevTab   string `yaml:"prev_tab"`
	NextField string `yaml:"next_field"`
	PrevField string `yaml:"prev_field"`
	Submit    string `yaml:"submit"`
	Reset     string `yaml:"reset"`
	Quit      string `yaml:"quit"`
}

func DefaultConfigPath() string {
	return paths.ConfigPath()
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
