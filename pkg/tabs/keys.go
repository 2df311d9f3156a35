package tabs

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/b/form-tabs/pkg/config"
)

// KeyMap are the bindings the panel reacts to.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
	Jump key.Binding
}

var jumpKeys = []string{"alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"}

// NewKeyMap builds the key map from configured bindings.
func NewKeyMap(b config.Bindings) KeyMap {
	return KeyMap{
		Next: key.NewBinding(key.WithKeys(b.NextTab), key.WithHelp(b.NextTab, "next tab")),
		Prev: key.NewBinding(key.WithKeys(b.PrevTab), key.WithHelp(b.PrevTab, "prev tab")),
		Jump: key.NewBinding(key.WithKeys(jumpKeys...), key.WithHelp("alt+1-9", "go to tab")),
	}
}

// DefaultKeyMap uses the default bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Bindings)
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// jumpIndex maps alt+N to pane index N-1.
func jumpIndex(s string) int {
	for i, k := range jumpKeys {
		if k == s {
			return i
		}
	}
	return -1
}
