package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/b/form-tabs/pkg/config"
	"github.com/b/form-tabs/pkg/form"
	"github.com/b/form-tabs/pkg/schema"
)

const profile = `
properties:
  settings:
    type: void
    x-component: FormTab
    properties:
      account:
        type: void
        title: Account
        x-component: FormTab.TabPane
        properties:
          email:
            type: string
            title: Email
            x-component: Input
            x-validator: email
            required: true
      limits:
        type: void
        x-component: FormTab.TabPane
        x-component-props:
          tab: Limits
        properties:
          age:
            type: number
            x-component: NumberPicker
            required: true
`

func writeSchema(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	return path
}

func newTestApp(t *testing.T, active string) (*app, string) {
	t.Helper()
	dir := t.TempDir()
	path := writeSchema(t, dir, profile)
	cfg := config.Default()
	cfg.Theme = "dark"
	a, err := newApp(path, filepath.Join(dir, "config.yaml"), cfg, active, logr.Discard())
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	return a, path
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		want  map[string]string
	}{
		{"empty", nil, map[string]string{}},
		{"pairs", []string{"a.b=1", "c=x=y"}, map[string]string{"a.b": "1", "c": "x=y"}},
		{"skips malformed", []string{"novalue", "=1", "ok="}, map[string]string{"ok": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseValues(tt.pairs); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseValues(%v) = %v, want %v", tt.pairs, got, tt.want)
			}
		})
	}
}

func TestFindFormTab(t *testing.T) {
	s, err := schema.Parse([]byte(profile))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := findFormTab(s).String(); got != "settings" {
		t.Errorf("findFormTab = %q, want settings", got)
	}

	flat, err := schema.Parse([]byte("properties:\n  a: {type: string}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := findFormTab(flat); len(got) != 0 {
		t.Errorf("findFormTab without FormTab = %v, want root", got)
	}
}

func TestWriteTabs(t *testing.T) {
	s, err := schema.Parse([]byte(profile))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f := form.New(s)
	f.Validate()

	var buf bytes.Buffer
	writeTabs(&buf, f)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	for i, want := range [][]string{
		{"KEY", "LABEL", "MESSAGES"},
		{"account", "Account", "1"},
		{"limits", "Limits", "1"},
	} {
		if got := strings.Fields(lines[i]); !reflect.DeepEqual(got, want) {
			t.Errorf("line %d = %v, want %v", i, got, want)
		}
	}
}

func TestFrameShowsErrors(t *testing.T) {
	a, _ := newTestApp(t, "account")
	if err := a.form.SetValues(map[string]string{"settings.account.email": "a@b.co"}); err != nil {
		t.Fatalf("SetValues: %v", err)
	}
	if n := a.form.Validate(); n != 1 {
		t.Fatalf("Validate = %d, want 1", n)
	}
	out := a.frame(60)
	for _, want := range []string{"Account", "Limits", "Email", "1 error(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
}

func TestNextTabUpdatesState(t *testing.T) {
	a, _ := newTestApp(t, "")
	a.Init()
	if got := a.tabs.ActiveKey(); got != "account" {
		t.Fatalf("initial tab = %q, want account", got)
	}

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlRight})
	if got := a.ctrl.State().ActiveKey(); got != "limits" {
		t.Errorf("state key = %q, want limits", got)
	}
	if got := a.tabs.ActiveKey(); got != "limits" {
		t.Errorf("panel key = %q, want limits", got)
	}
}

func TestSubmitWithErrorsStays(t *testing.T) {
	a, _ := newTestApp(t, "")
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if a.submitted {
		t.Error("submitted with validation errors")
	}
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Error("submit with errors quit the program")
		}
	}
	if !strings.Contains(a.status, "need attention") {
		t.Errorf("status = %q", a.status)
	}
}

func TestSchemaReloadKeepsValuesAndTab(t *testing.T) {
	a, path := newTestApp(t, "limits")
	if err := a.form.SetValue(form.ParseAddress("settings.limits.age"), "30"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	extra := profile + `      notes:
        type: void
        x-component: FormTab.TabPane
        properties:
          text:
            type: string
            x-component: Input.TextArea
`
	writeSchema(t, filepath.Dir(path), extra)
	a.Update(fileChangedMsg{path: path})

	if got := len(a.ctrl.Tabs()); got != 3 {
		t.Errorf("tabs after reload = %d, want 3", got)
	}
	if got := a.form.Value(form.ParseAddress("settings.limits.age")); got != "30" {
		t.Errorf("age after reload = %q, want 30", got)
	}
	if got := a.ctrl.State().ActiveKey(); got != "limits" {
		t.Errorf("active after reload = %q, want limits", got)
	}
}

func TestResetKeyRestoresDefaults(t *testing.T) {
	a, _ := newTestApp(t, "account")
	email := form.ParseAddress("settings.account.email")
	if err := a.form.SetValue(email, "bad"); err != nil {
		t.Fatal(err)
	}

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if got := a.form.Value(email); got != "" {
		t.Errorf("email after reset = %q, want empty", got)
	}
	if n := len(a.form.Errors()); n != 0 {
		t.Errorf("errors after reset = %d, want 0", n)
	}
	if got := a.fields.Focused().String(); got != "settings.account.email" {
		t.Errorf("focus after reset = %q", got)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := writeDefaultConfig(path, false); err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Bindings.Reset != "ctrl+r" {
		t.Errorf("Reset binding = %q", cfg.Bindings.Reset)
	}
	if err := writeDefaultConfig(path, false); err == nil {
		t.Error("overwrote existing config without force")
	}
	if err := writeDefaultConfig(path, true); err != nil {
		t.Errorf("force: %v", err)
	}
}
