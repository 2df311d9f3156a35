package formtab

import (
	"github.com/go-logr/logr"

	"github.com/b/form-tabs/pkg/form"
	"github.com/b/form-tabs/pkg/perf"
	"github.com/b/form-tabs/pkg/reactive"
	"github.com/b/form-tabs/pkg/schema"
	"github.com/b/form-tabs/pkg/tabs"
)

// SchemaRenderer draws the sub-schema of a tab, recursing into its fields.
type SchemaRenderer interface {
	RenderSchema(s *schema.Schema, addr form.Address, width int) string
}

// Props are the per-render inputs of a controller.
type Props struct {
	// ActiveKey, when set, overrides the state's key.
	ActiveKey string
	// FormTab supplies an external state. It is only read at mount.
	FormTab State
	// OnChange runs on every user tab switch, before the state is updated.
	OnChange func(key string)
	// Panel options are passed to the tab panel unchanged.
	Panel tabs.Options
}

// Controller renders the FormTab node at one field of a form.
type Controller struct {
	field    *form.Field
	renderer SchemaRenderer
	scope    reactive.Scope
	state    State
	log      logr.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(log logr.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// Mount creates the controller for field. The tab state is resolved here,
// once: props.FormTab if given, otherwise a new FormTab. field and renderer
// may be nil; the controller then renders no tabs and no pane bodies.
func Mount(field *form.Field, renderer SchemaRenderer, props Props, opts ...Option) *Controller {
	c := &Controller{field: field, renderer: renderer, log: logr.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	c.resolve(props)
	c.log.V(1).Info("mounted", "address", c.address().String(), "tabs", len(c.Tabs()))
	return c
}

// resolve memoises the state with no dependencies, so later props never
// replace it.
func (c *Controller) resolve(props Props) State {
	c.scope.Begin()
	c.state = reactive.Memo(&c.scope, func() State {
		if props.FormTab != nil {
			return props.FormTab
		}
		return CreateFormTab()
	})
	return c.state
}

// State returns the state resolved at mount.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) schema() *schema.Schema {
	if c.field == nil {
		return nil
	}
	return c.field.Schema
}

func (c *Controller) address() form.Address {
	if c.field == nil {
		return nil
	}
	return c.field.Address
}

// Tabs scans the controller's schema.
func (c *Controller) Tabs() []Tab {
	return ParseTabs(c.schema())
}

// ActiveKey resolves the selected key: props.ActiveKey, then the state.
func (c *Controller) ActiveKey(props Props) string {
	if props.ActiveKey != "" {
		return props.ActiveKey
	}
	return c.state.ActiveKey()
}

// BadgedTab returns the label for tab. Without an active key, or for the
// active tab itself, the label is plain. Otherwise it carries the number of
// feedback messages under <address>.<tab name>.*, if any.
func (c *Controller) BadgedTab(tab Tab, activeKey string) tabs.Label {
	label := tabs.Plain(tab.Label())
	if activeKey == "" || activeKey == tab.Key() || c.field == nil || c.field.Form == nil {
		return label
	}
	pattern := c.field.Address.Concat(tab.Name).String() + ".*"
	if n := len(c.field.Form.Feedback.QueryMessages(form.Query{Address: pattern})); n > 0 {
		return tabs.Badge(n, label)
	}
	return label
}

// Render builds the tab panel. Every pane is force-rendered so that fields
// on hidden tabs still validate and report feedback.
func (c *Controller) Render(props Props) tabs.Panel {
	t := perf.Start("formtab.Render")
	defer t.Stop()

	state := c.resolve(props)
	activeKey := c.ActiveKey(props)
	panel := tabs.Panel{
		Options:   props.Panel,
		ActiveKey: activeKey,
		OnChange: func(key string) {
			c.log.V(1).Info("tab change", "from", activeKey, "to", key)
			if props.OnChange != nil {
				props.OnChange(key)
			}
			state.SetActiveKey(key)
		},
	}
	for _, tab := range c.Tabs() {
		tab := tab
		panel.Panes = append(panel.Panes, tabs.Pane{
			Key:         tab.Key(),
			Tab:         c.BadgedTab(tab, activeKey),
			Disabled:    tab.Disabled(),
			ForceRender: true,
			Render: func(width int) string {
				if c.renderer == nil {
					return ""
				}
				return c.renderer.RenderSchema(tab.Schema, c.address().Concat(tab.Name), width)
			},
		})
	}
	return panel
}

// Watch calls fn whenever something a render depends on changes: the
// state's key (for observable states) or the form's feedback.
func (c *Controller) Watch(fn func()) (unsubscribe func()) {
	var unsubs []func()
	if obs, ok := c.state.(Observable); ok {
		unsubs = append(unsubs, obs.Subscribe(func(string) { fn() }))
	}
	if c.field != nil && c.field.Form != nil {
		unsubs = append(unsubs, c.field.Form.Feedback.Subscribe(fn))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
