package form

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/b/form-tabs/pkg/schema"
)

// codeValidator marks feedback produced by the rule validator.
const codeValidator = "validator"

func (f *Form) validateField(addr Address, node *schema.Schema) {
	msgs := f.check(node, f.values[addr.String()])
	f.Feedback.Update(Message{
		Address:  addr,
		Type:     TypeError,
		Code:     codeValidator,
		Messages: msgs,
	})
	if len(msgs) > 0 {
		f.log.V(2).Info("field invalid", "address", addr.String(), "messages", msgs)
	}
}

// rules splits a field's validation into the required flag and the rest of
// its x-validator rule.
func rules(node *schema.Schema) (required bool, tag string) {
	required = node.Required
	var rest []string
	for _, part := range strings.Split(node.Validator, ",") {
		switch part = strings.TrimSpace(part); part {
		case "", "omitempty":
		case "required":
			required = true
		default:
			rest = append(rest, part)
		}
	}
	return required, strings.Join(rest, ",")
}

// check validates the raw value of a field. Emptiness is decided on the
// text, so a typed zero or false is a value like any other.
func (f *Form) check(node *schema.Schema, value string) []string {
	required, tag := rules(node)
	if value == "" {
		if required {
			return []string{"is required"}
		}
		return nil
	}
	if tag == "" {
		return nil
	}

	var field any = value
	switch node.Kind() {
	case schema.KindNumberPicker:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return []string{"must be a number"}
		}
		field = n
	case schema.KindCheckbox:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return []string{"must be true or false"}
		}
		field = b
	}

	err := f.run(field, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{fmt.Sprintf("invalid rule %q", node.Validator)}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return msgs
}

var errBadRule = errors.New("bad rule")

// run applies tag to v. validator panics on tags it does not know, which
// here means a typo in the schema, so that is turned into errBadRule.
func (f *Form) run(v any, tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Info("bad validation rule", "rule", tag, "panic", fmt.Sprint(r))
			err = errBadRule
		}
	}()
	return f.validate.Var(v, tag)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	case "numeric", "number":
		return "must be numeric"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "eq":
		return fmt.Sprintf("must equal %s", fe.Param())
	}
	if fe.Param() != "" {
		return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed %s", fe.Tag())
}
