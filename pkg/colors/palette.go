package colors

import (
	"github.com/b/form-tabs/pkg/config"
)

// Palette is the resolved set of colours used to draw the form.
type Palette struct {
	ActiveFg   string
	ActiveBg   string
	InactiveFg string
	InactiveBg string
	DividerFg  string
	BadgeFg    string
	BadgeBg    string
	LabelFg    string
	FocusFg    string
	ErrorFg    string
	MutedFg    string
}

// Resolve fills every colour the config leaves empty from the terminal
// background and keeps configured text readable on its background.
func Resolve(cfg *config.Config, d *BackgroundDetector) Palette {
	dark := d.IsDarkBackground()
	p := Palette{
		ActiveBg:   cfg.Tabs.ActiveBg,
		ActiveFg:   cfg.Tabs.ActiveFg,
		InactiveBg: cfg.Tabs.InactiveBg,
		InactiveFg: cfg.Tabs.InactiveFg,
		BadgeBg:    cfg.Badge.Bg,
		BadgeFg:    cfg.Badge.Fg,
		FocusFg:    cfg.Fields.FocusFg,
		ErrorFg:    cfg.Fields.ErrorFg,
	}
	if dark {
		p.LabelFg, p.MutedFg, p.DividerFg = "#cccccc", "#888888", "#444444"
	} else {
		p.LabelFg, p.MutedFg, p.DividerFg = "#333333", "#9893a5", "#dfdad9"
	}
	if p.ActiveFg == "" {
		p.ActiveFg = TextOn(p.ActiveBg)
	} else {
		p.ActiveFg = EnsureContrast(p.ActiveFg, p.ActiveBg, 3.0)
	}
	if p.InactiveFg == "" {
		p.InactiveFg = p.MutedFg
		if p.InactiveBg != "" {
			p.InactiveFg = TextOn(p.InactiveBg)
		}
	}
	if p.BadgeFg == "" {
		p.BadgeFg = TextOn(p.BadgeBg)
	}
	return p
}
