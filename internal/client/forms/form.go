// Package forms validates user input for the authentication screens.
//
// A Form is a list of fields, each with its rules. Set validates a single
// field as the user types (incremental validation); Validate checks the
// whole form before submission (holistic validation). Errors are kept per
// field so they can be shown next to the input they belong to.
package forms

import (
	"maps"
	"strings"
)

// Field names used by the login and register forms.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// Field describes one input.
type Field struct {
	Name   string
	Label  string
	Secret bool
	Rules  []Rule
}

// Form is not safe for concurrent use; it belongs to one screen.
type Form struct {
	fields  []Field
	values  map[string]string
	touched map[string]bool
	errors  map[string]string
}

func New(fields ...Field) *Form {
	return &Form{
		fields:  fields,
		values:  make(map[string]string, len(fields)),
		touched: make(map[string]bool, len(fields)),
		errors:  make(map[string]string, len(fields)),
	}
}

// NewLoginForm: email and password.
func NewLoginForm() *Form {
	return New(
		Field{Name: FieldEmail, Label: "Email", Rules: []Rule{Required(MsgRequired), Email(MsgInvalidEmail)}},
		Field{Name: FieldPassword, Label: "Password", Secret: true, Rules: []Rule{NonEmpty(MsgRequired), MinLength(MinPasswordLength, passwordTooShort())}},
	)
}

// NewRegisterForm: name, email, password and its confirmation.
func NewRegisterForm() *Form {
	return New(
		Field{Name: FieldName, Label: "Name", Rules: []Rule{Required(MsgRequired)}},
		Field{Name: FieldEmail, Label: "Email", Rules: []Rule{Required(MsgRequired), Email(MsgInvalidEmail)}},
		Field{Name: FieldPassword, Label: "Password", Secret: true, Rules: []Rule{NonEmpty(MsgRequired), MinLength(MinPasswordLength, passwordTooShort())}},
		Field{Name: FieldConfirmPassword, Label: "Confirm password", Secret: true, Rules: []Rule{NonEmpty(MsgRequired), EqualTo(FieldPassword, MsgPasswordsDiffer)}},
	)
}

// Fields returns the field descriptions in display order.
func (f *Form) Fields() []Field {
	return f.fields
}

// Value returns the current value of a field.
func (f *Form) Value(name string) string {
	return f.values[name]
}

// Set stores value, marks the field touched and re-validates every touched
// field (a changed password can fix or break its confirmation). It returns
// the error of the field just set. Only the email is trimmed; secrets are
// kept exactly as typed.
func (f *Form) Set(name, value string) string {
	if name == FieldEmail {
		value = strings.TrimSpace(value)
	}
	f.values[name] = value
	f.touched[name] = true
	for _, fd := range f.fields {
		if f.touched[fd.Name] {
			f.check(fd)
		}
	}
	return f.errors[name]
}

// Validate touches and checks every field and reports whether the form may
// be submitted.
func (f *Form) Validate() bool {
	for _, fd := range f.fields {
		f.touched[fd.Name] = true
		f.check(fd)
	}
	return len(f.errors) == 0
}

// Error returns the message for a field, or "".
func (f *Form) Error(name string) string {
	return f.errors[name]
}

// Errors returns a copy of all field messages.
func (f *Form) Errors() map[string]string {
	return maps.Clone(f.errors)
}

// check runs fd's rules in order and records the first failure.
func (f *Form) check(fd Field) {
	v := f.values[fd.Name]
	for _, r := range fd.Rules {
		if msg := r.Check(v, f); msg != "" {
			f.errors[fd.Name] = msg
			return
		}
	}
	delete(f.errors, fd.Name)
}
