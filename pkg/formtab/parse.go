// Package formtab lays out a form schema as tabs. Each child of a FormTab
// node whose component is a tab pane becomes one tab; tabs other than the
// one being viewed carry a badge counting the feedback messages recorded
// beneath them, so errors on hidden tabs stay visible.
package formtab

import (
	"github.com/b/form-tabs/pkg/schema"
)

// Tab is one tab pane found in a schema.
type Tab struct {
	Name   string
	Props  map[string]any
	Schema *schema.Schema
}

// Key identifies the tab in the panel: the declared "key" prop when there
// is one, otherwise the property name. Active-tab comparison uses it too.
func (t Tab) Key() string {
	if k, ok := t.Schema.StringProp("key"); ok && k != "" {
		return k
	}
	return t.Name
}

// Label is the tab title: the "tab" prop, else the schema title, else the
// property name.
func (t Tab) Label() string {
	if l, ok := t.Schema.StringProp("tab"); ok && l != "" {
		return l
	}
	return t.Schema.DisplayTitle()
}

// Disabled reports the "disabled" prop.
func (t Tab) Disabled() bool {
	d, _ := t.Props["disabled"].(bool)
	return d
}

// ParseTabs returns the tab panes directly under s in declaration order.
// Grandchildren are not inspected; a nil schema yields no tabs.
func ParseTabs(s *schema.Schema) []Tab {
	var tabs []Tab
	s.MapProperties(func(child *schema.Schema, name string) {
		if child.Kind() == schema.KindTabPane {
			tabs = append(tabs, Tab{
				Name:   name,
				Props:  child.ComponentProps,
				Schema: child,
			})
		}
	})
	return tabs
}
