// Package tabs is a terminal tab panel: a tab bar with optional count
// badges over the body of the active pane. It is a bubbletea component
// (Update returns the updated Model) meant to be embedded in a program.
package tabs

// Position is where the tab bar sits relative to the panes.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
)

// Label is a tab title, optionally carrying a count badge.
type Label struct {
	Text  string
	Count int
}

// Plain returns a label without a badge.
func Plain(text string) Label {
	return Label{Text: text}
}

// Badge wraps label in a count badge. A count of zero or less leaves the
// label plain.
func Badge(count int, label Label) Label {
	if count < 0 {
		count = 0
	}
	label.Count = count
	return label
}

// Badged reports whether the label shows a badge.
func (l Label) Badged() bool {
	return l.Count > 0
}

// Pane is one entry of the panel.
type Pane struct {
	Key      string
	Tab      Label
	Disabled bool
	// ForceRender renders the body on every frame even while hidden. The
	// tallest such pane sets the body height, so switching tabs keeps the
	// layout still. State of hidden fields, such as validation feedback,
	// is kept by the host's form, not by rendering.
	ForceRender bool
	Render      func(width int) string
}

// Options are the presentation settings a caller can forward untouched.
type Options struct {
	Position Position
	Gutter   int
	// Extra is drawn at the right end of the tab bar.
	Extra string
}

// Panel is the full description of what to draw. An empty ActiveKey leaves
// selection to the widget, which starts on the first enabled pane.
type Panel struct {
	Options
	ActiveKey string
	OnChange  func(key string)
	Panes     []Pane
}

// Index returns the position of key in the panel, or -1.
func (p Panel) Index(key string) int {
	for i, pane := range p.Panes {
		if pane.Key == key {
			return i
		}
	}
	return -1
}
