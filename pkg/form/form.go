// Package form is the form engine behind form-tabs: it owns field values,
// runs x-validator rules and records the results in a Feedback store that
// the tab controller queries for badge counts.
package form

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/b/form-tabs/pkg/schema"
)

var ErrUnknownField = errors.New("unknown field")

// Form holds the values and feedback of one schema instance.
type Form struct {
	ID       string
	Schema   *schema.Schema
	Feedback *Feedback

	values   map[string]string
	leaves   []Address
	nodes    map[string]*schema.Schema
	validate *validator.Validate
	log      logr.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger used for validation tracing.
func WithLogger(log logr.Logger) Option {
	return func(f *Form) { f.log = log }
}

// New builds a form for root, seeding values from schema defaults.
func New(root *schema.Schema, opts ...Option) *Form {
	f := &Form{
		ID:       uuid.NewString(),
		Schema:   root,
		Feedback: newFeedback(),
		nodes:    make(map[string]*schema.Schema),
		validate: validator.New(),
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	root.Walk(func(node *schema.Schema, path []string) {
		addr := Address(path)
		f.nodes[addr.String()] = node
		if !node.IsLeaf() {
			return
		}
		f.leaves = append(f.leaves, addr)
	})
	f.seedDefaults()
	return f
}

func (f *Form) seedDefaults() {
	f.values = make(map[string]string)
	for _, addr := range f.leaves {
		if d := f.nodes[addr.String()].Default; d != nil {
			f.values[addr.String()] = fmt.Sprint(d)
		}
	}
}

// Fields returns the addresses of every value-holding field in schema order.
func (f *Form) Fields() []Address {
	return f.leaves
}

// Field returns the field at addr. Unknown addresses yield a field with a
// nil Schema rather than an error.
func (f *Form) Field(addr Address) *Field {
	return &Field{Address: addr, Form: f, Schema: f.nodes[addr.String()]}
}

// Value returns the current value at addr.
func (f *Form) Value(addr Address) string {
	return f.values[addr.String()]
}

// Values returns a copy of all values keyed by dotted address.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// SetValue stores v at addr and revalidates that field.
func (f *Form) SetValue(addr Address, v string) error {
	node := f.nodes[addr.String()]
	if node == nil || !node.IsLeaf() {
		return fmt.Errorf("%w: %s", ErrUnknownField, addr)
	}
	f.values[addr.String()] = v
	f.validateField(addr, node)
	return nil
}

// SetValues applies a batch of dotted-address values. Every address is
// checked first; when one is unknown nothing is written.
func (f *Form) SetValues(values map[string]string) error {
	for k := range values {
		if node := f.nodes[k]; node == nil || !node.IsLeaf() {
			return fmt.Errorf("%w: %s", ErrUnknownField, k)
		}
	}
	for _, addr := range f.leaves {
		if v, ok := values[addr.String()]; ok {
			if err := f.SetValue(addr, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reset restores schema defaults and drops all feedback.
func (f *Form) Reset() {
	f.seedDefaults()
	f.Feedback.Clear(nil)
}

// Validate checks every field and returns the number of fields in error.
func (f *Form) Validate() int {
	for _, addr := range f.leaves {
		f.validateField(addr, f.nodes[addr.String()])
	}
	n := len(f.Errors())
	f.log.V(1).Info("validated form", "form", f.ID, "fields", len(f.leaves), "errors", n)
	return n
}

// Errors returns every error record.
func (f *Form) Errors() []Message {
	return f.Feedback.QueryMessages(Query{Type: TypeError})
}

// Field is one node of a form, addressed by its path.
type Field struct {
	Address Address
	Form    *Form
	Schema  *schema.Schema
}

// Value returns the field's current value.
func (fd *Field) Value() string {
	return fd.Form.Value(fd.Address)
}

// Errors returns the error messages recorded for exactly this field.
func (fd *Field) Errors() []string {
	var out []string
	for _, m := range fd.Form.Feedback.QueryMessages(Query{Address: fd.Address.String(), Type: TypeError}) {
		out = append(out, m.Messages...)
	}
	return out
}
