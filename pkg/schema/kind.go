package schema

import "strings"

// Kind is the enumerated form of an x-component tag.
type Kind int

const (
	KindNone Kind = iota
	KindUnknown
	KindFormTab
	KindTabPane
	KindInput
	KindTextArea
	KindPassword
	KindNumberPicker
	KindCheckbox
)

// Components maps the tags form-tabs understands to their kind.
var Components = map[string]Kind{
	"FormTab":         KindFormTab,
	"FormTab.TabPane": KindTabPane,
	"TabPane":         KindTabPane,
	"Input":           KindInput,
	"Input.TextArea":  KindTextArea,
	"Password":        KindPassword,
	"NumberPicker":    KindNumberPicker,
	"Checkbox":        KindCheckbox,
}

// KindOf resolves a raw component tag. Tags outside the registry that still
// contain "TabPane" are treated as tab panes so externally authored schemas
// (e.g. "ArrayTabs.TabPane") keep working.
func KindOf(component string) Kind {
	if component == "" {
		return KindNone
	}
	if k, ok := Components[component]; ok {
		return k
	}
	if strings.Contains(component, "TabPane") {
		return KindTabPane
	}
	return KindUnknown
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFormTab:
		return "FormTab"
	case KindTabPane:
		return "TabPane"
	case KindInput:
		return "Input"
	case KindTextArea:
		return "Input.TextArea"
	case KindPassword:
		return "Password"
	case KindNumberPicker:
		return "NumberPicker"
	case KindCheckbox:
		return "Checkbox"
	}
	return "unknown"
}
