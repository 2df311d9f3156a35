// Package fields renders the fields of a schema subtree and edits the
// focused one. It is the recursive renderer the tab controller delegates
// pane bodies to.
package fields

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/b/form-tabs/pkg/colors"
	"github.com/b/form-tabs/pkg/config"
	"github.com/b/form-tabs/pkg/form"
	"github.com/b/form-tabs/pkg/schema"
)

// ComponentFunc wraps the rendered children of a node.
type ComponentFunc func(node *schema.Schema, children string) string

// Styles for field rows.
type Styles struct {
	Label lipgloss.Style
	Focus lipgloss.Style
	Value lipgloss.Style
	Error lipgloss.Style
	Title lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles builds field styles from a palette.
func NewStyles(p colors.Palette) Styles {
	return Styles{
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color(p.LabelFg)),
		Focus: lipgloss.NewStyle().Foreground(lipgloss.Color(p.FocusFg)).Bold(true),
		Value: lipgloss.NewStyle(),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color(p.ErrorFg)),
		Title: lipgloss.NewStyle().Bold(true).Underline(true),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(p.MutedFg)),
	}
}

// Renderer draws schema subtrees of one form.
type Renderer struct {
	form       *form.Form
	styles     Styles
	labelWidth int
	components map[string]ComponentFunc

	focus form.Address
	input textinput.Model
}

// New returns a renderer for f.
func New(f *form.Form, styles Styles, cfg config.Fields) *Renderer {
	ti := textinput.New()
	ti.Prompt = ""
	return &Renderer{
		form:       f,
		styles:     styles,
		labelWidth: cfg.LabelWidth,
		components: make(map[string]ComponentFunc),
		input:      ti,
	}
}

// Register installs a component wrapper for a tag.
func (r *Renderer) Register(component string, render func(node *schema.Schema, children string) string) {
	r.components[component] = render
}

// SetStyles swaps styles, e.g. after a config reload.
func (r *Renderer) SetStyles(s Styles, cfg config.Fields) {
	r.styles = s
	r.labelWidth = cfg.LabelWidth
}

// RenderSchema renders node, found at addr, and everything below it.
func (r *Renderer) RenderSchema(node *schema.Schema, addr form.Address, width int) string {
	if node == nil {
		return ""
	}
	if node.IsLeaf() {
		return r.renderField(node, addr, width)
	}

	var rows []string
	for _, child := range node.Properties() {
		if out := r.RenderSchema(child, addr.Concat(child.Name), width); out != "" {
			rows = append(rows, out)
		}
	}
	children := strings.Join(rows, "\n")

	if fn, ok := r.components[node.Component]; ok {
		return fn(node, children)
	}
	if node.Type == "object" && node.Title != "" {
		indented := lipgloss.NewStyle().PaddingLeft(2).Render(children)
		return r.styles.Title.Render(node.Title) + "\n" + indented
	}
	return children
}

func (r *Renderer) renderField(node *schema.Schema, addr form.Address, width int) string {
	focused := r.focus != nil && r.focus.Equal(addr)

	title := node.DisplayTitle()
	if node.Required || strings.Contains(node.Validator, "required") {
		title += "*"
	}
	labelStyle := r.styles.Label
	if focused {
		labelStyle = r.styles.Focus
	}
	label := labelStyle.Render(runewidth.FillRight(runewidth.Truncate(title, r.labelWidth, "…"), r.labelWidth))

	valueWidth := width - r.labelWidth - 1
	if valueWidth < 8 {
		valueWidth = 8
	}
	var value string
	if focused {
		r.input.Width = valueWidth
		value = r.input.View()
	} else {
		v := r.form.Value(addr)
		if node.Kind() == schema.KindPassword {
			v = strings.Repeat("•", runewidth.StringWidth(v))
		}
		if v == "" {
			value = r.styles.Muted.Render(runewidth.Truncate(node.Description, valueWidth, "…"))
		} else {
			value = r.styles.Value.Render(runewidth.Truncate(v, valueWidth, "…"))
		}
	}

	lines := []string{label + " " + value}
	indent := strings.Repeat(" ", r.labelWidth+1)
	for _, msg := range r.form.Field(addr).Errors() {
		lines = append(lines, indent+r.styles.Error.Render("✗ "+runewidth.Truncate(msg, valueWidth-2, "…")))
	}
	return strings.Join(lines, "\n")
}

// FieldsUnder lists value fields at or below addr in schema order.
func (r *Renderer) FieldsUnder(addr form.Address) []form.Address {
	var out []form.Address
	for _, f := range r.form.Fields() {
		if f.HasPrefix(addr) {
			out = append(out, f)
		}
	}
	return out
}

// Focused returns the focused field, or nil.
func (r *Renderer) Focused() form.Address {
	return r.focus
}

// Focus commits the current edit and starts editing addr.
func (r *Renderer) Focus(addr form.Address) tea.Cmd {
	r.Commit()
	r.focus = addr
	r.input.EchoMode = textinput.EchoNormal
	if node := r.form.Field(addr).Schema; node != nil && node.Kind() == schema.KindPassword {
		r.input.EchoMode = textinput.EchoPassword
	}
	r.input.SetValue(r.form.Value(addr))
	r.input.CursorEnd()
	return r.input.Focus()
}

// Blur commits and drops focus.
func (r *Renderer) Blur() {
	r.Commit()
	r.focus = nil
	r.input.Blur()
}

// Commit writes the edited text into the form when it changed.
func (r *Renderer) Commit() {
	if r.focus == nil {
		return
	}
	if v := r.input.Value(); v != r.form.Value(r.focus) {
		_ = r.form.SetValue(r.focus, v)
	}
}

// Move focuses the field delta places away from the focused one among
// fields, wrapping around. With nothing focused it starts at the first.
func (r *Renderer) Move(fields []form.Address, delta int) tea.Cmd {
	if len(fields) == 0 {
		r.Blur()
		return nil
	}
	idx := -1
	for i, f := range fields {
		if r.focus != nil && f.Equal(r.focus) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r.Focus(fields[0])
	}
	n := len(fields)
	return r.Focus(fields[((idx+delta)%n+n)%n])
}

// Update forwards input to the focused text input.
func (r *Renderer) Update(msg tea.Msg) tea.Cmd {
	if r.focus == nil {
		return nil
	}
	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return cmd
}
