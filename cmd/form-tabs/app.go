package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"

	"github.com/b/form-tabs/pkg/colors"
	"github.com/b/form-tabs/pkg/config"
	"github.com/b/form-tabs/pkg/fields"
	"github.com/b/form-tabs/pkg/form"
	"github.com/b/form-tabs/pkg/formtab"
	"github.com/b/form-tabs/pkg/perf"
	"github.com/b/form-tabs/pkg/schema"
	"github.com/b/form-tabs/pkg/tabs"
)

type fileChangedMsg struct {
	path string
}

type appKeys struct {
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

func newAppKeys(b config.Bindings) appKeys {
	return appKeys{
		NextField: key.NewBinding(key.WithKeys(b.NextField)),
		PrevField: key.NewBinding(key.WithKeys(b.PrevField)),
		Submit:    key.NewBinding(key.WithKeys(b.Submit)),
		Reset:     key.NewBinding(key.WithKeys(b.Reset)),
		Quit:      key.NewBinding(key.WithKeys(b.Quit)),
	}
}

// app is the interactive form: one FormTab controller over the schema,
// a tab panel and the field editor.
type app struct {
	schemaPath string
	configPath string
	cfg        *config.Config
	log        logr.Logger

	form        *form.Form
	tabsAddr    form.Address
	ctrl        *formtab.Controller
	unwatch     func()
	props       formtab.Props
	fields      *fields.Renderer
	fieldStyles fields.Styles
	tabs        tabs.Model
	keys        appKeys

	dirty     bool
	width     int
	height    int
	status    string
	submitted bool
}

func newApp(schemaPath, configPath string, cfg *config.Config, activeKey string, log logr.Logger) (*app, error) {
	s, err := schema.Load(schemaPath)
	if err != nil {
		return nil, err
	}
	a := &app{
		schemaPath: schemaPath,
		configPath: configPath,
		log:        log,
		tabs:       tabs.New(tabs.DefaultStyles(), tabs.DefaultKeyMap()),
	}
	a.applyConfig(cfg)
	a.mount(s, formtab.CreateFormTab(activeKey), nil)
	return a, nil
}

// findFormTab returns the address of the first FormTab node, or the root
// when the schema has none (its tab panes then sit at the top level).
func findFormTab(root *schema.Schema) form.Address {
	var found form.Address
	done := false
	root.Walk(func(node *schema.Schema, path []string) {
		if !done && node.Kind() == schema.KindFormTab {
			found = form.Address(path)
			done = true
		}
	})
	return found
}

// mount builds the form and controller for s. state is handed to the new
// controller so the selected tab survives a schema reload; keep carries
// values over by address.
func (a *app) mount(s *schema.Schema, state formtab.State, keep map[string]string) {
	if a.unwatch != nil {
		a.unwatch()
	}
	a.form = form.New(s, form.WithLogger(a.log.WithName("form")))
	for _, addr := range a.form.Fields() {
		if v, ok := keep[addr.String()]; ok {
			_ = a.form.SetValue(addr, v)
		}
	}
	a.fields = fields.New(a.form, a.fieldStyles, a.cfg.Fields)
	formtab.Install(a.fields)

	a.tabsAddr = findFormTab(s)
	a.ctrl = formtab.Mount(a.form.Field(a.tabsAddr), a.fields, formtab.Props{FormTab: state},
		formtab.WithLogger(a.log.WithName("formtab")))
	a.unwatch = a.ctrl.Watch(func() { a.dirty = true })
	a.props.OnChange = a.onTabChange
	a.dirty = true
}

func (a *app) applyConfig(cfg *config.Config) {
	a.cfg = cfg
	p := colors.Resolve(cfg, colors.NewBackgroundDetector(colors.ThemeMode(cfg.Theme)))
	a.fieldStyles = fields.NewStyles(p)
	if a.fields != nil {
		a.fields.SetStyles(a.fieldStyles, cfg.Fields)
	}
	a.tabs.SetStyles(tabs.NewStyles(cfg, p))
	a.tabs.SetKeyMap(tabs.NewKeyMap(cfg.Bindings))
	a.keys = newAppKeys(cfg.Bindings)
	a.props.Panel = tabs.Options{
		Position: tabs.Position(cfg.Tabs.Position),
		Gutter:   cfg.Tabs.Gutter,
	}
	a.dirty = true
}

func (a *app) onTabChange(key string) {
	a.log.V(1).Info("leaving tab", "to", key)
	a.fields.Blur()
	a.status = ""
}

func (a *app) refresh() {
	if !a.dirty {
		return
	}
	a.tabs.SetPanel(a.ctrl.Render(a.props))
	a.dirty = false
}

// activeFields lists the editable fields of the tab being shown.
func (a *app) activeFields() []form.Address {
	key := a.tabs.ActiveKey()
	for _, tab := range a.ctrl.Tabs() {
		if tab.Key() == key {
			return a.fields.FieldsUnder(a.tabsAddr.Concat(tab.Name))
		}
	}
	return nil
}

func (a *app) reload(path string) {
	switch path {
	case a.configPath:
		cfg, err := config.LoadOrDefault(path)
		if err != nil {
			a.status = err.Error()
			return
		}
		a.applyConfig(cfg)
		a.log.Info("config reloaded", "path", path)
	case a.schemaPath:
		s, err := schema.Load(path)
		if err != nil {
			a.status = err.Error()
			return
		}
		a.mount(s, a.ctrl.State(), a.form.Values())
		a.log.Info("schema reloaded", "path", path, "tabs", len(a.ctrl.Tabs()))
	}
}

func (a *app) Init() tea.Cmd {
	a.refresh()
	return a.fields.Move(a.activeFields(), 1)
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.tabs.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.fields.Blur()
			return a, tea.Quit
		case key.Matches(msg, a.keys.Submit):
			a.fields.Commit()
			if n := a.form.Validate(); n > 0 {
				a.status = fmt.Sprintf("%d field(s) need attention", n)
			} else {
				a.submitted = true
				return a, tea.Quit
			}
		case key.Matches(msg, a.keys.Reset):
			a.fields.Blur()
			a.form.Reset()
			a.status = "form reset"
			cmds = append(cmds, a.fields.Move(a.activeFields(), 1))
		case key.Matches(msg, a.keys.NextField):
			cmds = append(cmds, a.fields.Move(a.activeFields(), 1))
		case key.Matches(msg, a.keys.PrevField):
			cmds = append(cmds, a.fields.Move(a.activeFields(), -1))
		default:
			var cmd tea.Cmd
			a.tabs, cmd = a.tabs.Update(msg)
			if cmd == nil {
				cmd = a.fields.Update(msg)
			}
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		a.tabs, cmd = a.tabs.Update(msg)
		cmds = append(cmds, cmd)

	case tabs.ChangeMsg:
		a.refresh()
		cmds = append(cmds, a.fields.Move(a.activeFields(), 1))

	case fileChangedMsg:
		a.reload(msg.path)

	default:
		cmds = append(cmds, a.fields.Update(msg))
	}
	a.refresh()
	return a, tea.Batch(cmds...)
}

func (a *app) View() string {
	return a.frame(a.width)
}

// frame renders the whole screen at width.
func (a *app) frame(width int) string {
	t := perf.Start("app.frame")
	defer t.Stop()

	if width > 0 && width != a.width {
		a.width = width
		a.tabs.SetSize(width, a.height)
	}
	a.refresh()

	status := a.fieldStyles.Muted.Render("no errors")
	if n := len(a.form.Errors()); n > 0 {
		status = a.fieldStyles.Error.Render(fmt.Sprintf("%d error(s)", n))
	}
	if a.status != "" {
		status += "  " + a.status
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.tabs.View(), "", status, a.tabs.HelpView())
}
