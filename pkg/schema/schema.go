// Package schema holds the declarative form tree rendered by form-tabs.
//
// Schemas are written in YAML (or JSON) using formily-style keys:
//
//	type: object
//	properties:
//	  tabs:
//	    type: void
//	    x-component: FormTab
//	    properties:
//	      account:
//	        type: void
//	        x-component: FormTab.TabPane
//	        x-component-props: {tab: Account}
//	        properties:
//	          email: {type: string, title: Email, x-component: Input, x-validator: "required,email"}
//
// Property order is declaration order.
package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Schema is one node of the form tree.
type Schema struct {
	Name           string
	Type           string
	Title          string
	Description    string
	Component      string         // raw x-component tag
	ComponentProps map[string]any // x-component-props
	Decorator      string
	Validator      string // x-validator rule, go-playground/validator syntax
	Required       bool
	Default        any

	Parent     *Schema
	properties []*Schema
}

type rawSchema struct {
	Type           string         `yaml:"type"`
	Title          string         `yaml:"title"`
	Description    string         `yaml:"description"`
	Component      string         `yaml:"x-component"`
	ComponentProps map[string]any `yaml:"x-component-props"`
	Decorator      string         `yaml:"x-decorator"`
	Validator      string         `yaml:"x-validator"`
	Required       bool           `yaml:"required"`
	Default        any            `yaml:"default"`
	Properties     yaml.Node      `yaml:"properties"`
}

// UnmarshalYAML decodes a node keeping the order of its properties.
func (s *Schema) UnmarshalYAML(value *yaml.Node) error {
	var raw rawSchema
	if err := value.Decode(&raw); err != nil {
		return err
	}
	s.Type = raw.Type
	s.Title = raw.Title
	s.Description = raw.Description
	s.Component = raw.Component
	s.ComponentProps = raw.ComponentProps
	s.Decorator = raw.Decorator
	s.Validator = raw.Validator
	s.Required = raw.Required
	s.Default = raw.Default

	props := raw.Properties
	if props.Kind == 0 {
		return nil
	}
	if props.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: properties must be a mapping", props.Line)
	}
	for i := 0; i+1 < len(props.Content); i += 2 {
		name := props.Content[i].Value
		child := &Schema{}
		if err := props.Content[i+1].Decode(child); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		s.AddProperty(name, child)
	}
	return nil
}

// AddProperty appends child under name, replacing an existing child with
// the same name in place.
func (s *Schema) AddProperty(name string, child *Schema) *Schema {
	child.Name = name
	child.Parent = s
	for i, p := range s.properties {
		if p.Name == name {
			s.properties[i] = child
			return child
		}
	}
	s.properties = append(s.properties, child)
	return child
}

// Properties returns the direct children in declaration order.
func (s *Schema) Properties() []*Schema {
	if s == nil {
		return nil
	}
	return s.properties
}

// Property returns the named child, or nil.
func (s *Schema) Property(name string) *Schema {
	for _, p := range s.Properties() {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// MapProperties calls visit for each direct child in declaration order.
// It is a no-op on a nil schema.
func (s *Schema) MapProperties(visit func(child *Schema, name string)) {
	for _, p := range s.Properties() {
		visit(p, p.Name)
	}
}

// Walk visits s and every descendant depth-first, parents before children.
// path holds the property names from s down to the visited node.
func (s *Schema) Walk(visit func(node *Schema, path []string)) {
	if s == nil {
		return
	}
	var walk func(n *Schema, path []string)
	walk = func(n *Schema, path []string) {
		visit(n, path)
		for _, p := range n.properties {
			walk(p, append(append([]string(nil), path...), p.Name))
		}
	}
	walk(s, nil)
}

// Kind returns the enumerated component kind of the node.
func (s *Schema) Kind() Kind {
	if s == nil {
		return KindNone
	}
	return KindOf(s.Component)
}

// IsVoid reports whether the node is layout only and carries no value.
func (s *Schema) IsVoid() bool {
	return s != nil && s.Type == "void"
}

// IsLeaf reports whether the node holds a value rather than children.
func (s *Schema) IsLeaf() bool {
	if s == nil || s.IsVoid() {
		return false
	}
	return s.Type != "object" && len(s.properties) == 0
}

// DisplayTitle returns the title, falling back to the property name.
func (s *Schema) DisplayTitle() string {
	if s == nil {
		return ""
	}
	if t := strings.TrimSpace(s.Title); t != "" {
		return t
	}
	return s.Name
}

// StringProp returns x-component-props[key] when it is a string.
func (s *Schema) StringProp(key string) (string, bool) {
	if s == nil || s.ComponentProps == nil {
		return "", false
	}
	v, ok := s.ComponentProps[key].(string)
	return v, ok
}
