package formtab

import (
	"github.com/b/form-tabs/pkg/schema"
)

// TabPaneComponent is the component tag the scanner recognises.
const TabPaneComponent = "FormTab.TabPane"

// TabPane renders a pane's children as they are. It exists so schemas have
// a tag to mark panes with; the pane adds no layout of its own.
func TabPane(_ *schema.Schema, children string) string {
	return children
}

// Registrar accepts component renderers by tag.
type Registrar interface {
	Register(component string, render func(node *schema.Schema, children string) string)
}

// Install registers TabPane under its tag and the bare "TabPane" alias.
func Install(r Registrar) {
	r.Register(TabPaneComponent, TabPane)
	r.Register("TabPane", TabPane)
}
