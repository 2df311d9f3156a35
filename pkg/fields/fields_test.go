package fields

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/b/form-tabs/pkg/colors"
	"github.com/b/form-tabs/pkg/config"
	"github.com/b/form-tabs/pkg/form"
	"github.com/b/form-tabs/pkg/schema"
)

const doc = `
properties:
  tabs:
    type: void
    x-component: FormTab
    properties:
      account:
        type: void
        x-component: FormTab.TabPane
        properties:
          email:
            type: string
            title: Email
            x-validator: required,email
          secret:
            type: string
            title: Secret
            x-component: Password
            default: hunter2
          address:
            type: object
            title: Address
            properties:
              city:
                type: string
                title: City
                description: where you live
`

func newRenderer(t *testing.T) (*form.Form, *Renderer) {
	t.Helper()
	s, err := schema.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	f := form.New(s)
	cfg := config.Default()
	p := colors.Resolve(cfg, colors.NewBackgroundDetector(colors.ThemeModeDark))
	return f, New(f, NewStyles(p), cfg.Fields)
}

func TestRenderSchema(t *testing.T) {
	f, r := newRenderer(t)
	f.Validate()

	pane := f.Schema.Property("tabs").Property("account")
	out := r.RenderSchema(pane, form.ParseAddress("tabs.account"), 60)

	for _, want := range []string{"Email*", "✗ is required", "Secret", "•••••••", "Address", "City", "where you live"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hunter2") {
		t.Errorf("password shown in clear:\n%s", out)
	}
}

func TestRegisteredComponentWrapsChildren(t *testing.T) {
	f, r := newRenderer(t)
	r.Register("FormTab.TabPane", func(node *schema.Schema, children string) string {
		return "[" + node.Name + "]\n" + children
	})
	pane := f.Schema.Property("tabs").Property("account")
	out := r.RenderSchema(pane, form.ParseAddress("tabs.account"), 60)
	if !strings.HasPrefix(out, "[account]\n") {
		t.Errorf("component not applied:\n%s", out)
	}
}

func TestRenderNilSchema(t *testing.T) {
	_, r := newRenderer(t)
	if out := r.RenderSchema(nil, nil, 40); out != "" {
		t.Errorf("got %q", out)
	}
}

func TestFocusEditCommit(t *testing.T) {
	f, r := newRenderer(t)
	fields := r.FieldsUnder(form.ParseAddress("tabs.account"))
	if len(fields) != 3 {
		t.Fatalf("fields = %v", fields)
	}

	r.Move(fields, 1)
	email := form.ParseAddress("tabs.account.email")
	if !r.Focused().Equal(email) {
		t.Fatalf("focused = %v, want email", r.Focused())
	}
	for _, ch := range "a@b.co" {
		r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{ch}})
	}
	r.Move(fields, 1)
	if f.Value(email) != "a@b.co" {
		t.Fatalf("email = %q, want committed value", f.Value(email))
	}
	if !r.Focused().Equal(fields[1]) {
		t.Fatalf("focused = %v, want %v", r.Focused(), fields[1])
	}

	r.Move(fields, -1)
	r.Move(fields, -1)
	if !r.Focused().Equal(fields[2]) {
		t.Fatalf("wrap: focused = %v, want %v", r.Focused(), fields[2])
	}

	r.Blur()
	if r.Focused() != nil {
		t.Fatal("focus kept after Blur")
	}
}
