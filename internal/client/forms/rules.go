package forms

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Rule checks one field value. It returns a user-facing message when the
// value is rejected and "" when it is accepted. The whole form is passed so
// rules can compare fields.
type Rule interface {
	Check(value string, f *Form) string
}

// RuleFunc adapts a function to Rule.
type RuleFunc func(value string, f *Form) string

func (fn RuleFunc) Check(value string, f *Form) string { return fn(value, f) }

// Required rejects empty or whitespace-only values.
func Required(msg string) Rule {
	return RuleFunc(func(v string, _ *Form) string {
		if strings.TrimSpace(v) == "" {
			return msg
		}
		return ""
	})
}

// NonEmpty rejects only the empty string. Secret fields use it: spaces are
// valid password characters.
func NonEmpty(msg string) Rule {
	return RuleFunc(func(v string, _ *Form) string {
		if v == "" {
			return msg
		}
		return ""
	})
}

// Email rejects values that are not a bare RFC 5322 address. Empty values
// pass; combine with Required.
func Email(msg string) Rule {
	return RuleFunc(func(v string, _ *Form) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		addr, err := mail.ParseAddress(v)
		if err != nil || addr.Address != v {
			return msg
		}
		return ""
	})
}

// MinLength rejects values shorter than n characters. Empty values pass.
func MinLength(n int, msg string) Rule {
	return RuleFunc(func(v string, _ *Form) string {
		if v != "" && utf8.RuneCountInString(v) < n {
			return msg
		}
		return ""
	})
}

// EqualTo rejects values that differ from the named field.
func EqualTo(field, msg string) Rule {
	return RuleFunc(func(v string, f *Form) string {
		if v != f.Value(field) {
			return msg
		}
		return ""
	})
}

// Default messages.
const (
	MsgRequired         = "Required"
	MsgInvalidEmail     = "Invalid email address"
	MsgPasswordTooShort = "At least %d characters"
	MsgPasswordsDiffer  = "Passwords do not match"
)

// MinPasswordLength is the shortest password accepted by the auth forms.
const MinPasswordLength = 6

func passwordTooShort() string {
	return fmt.Sprintf(MsgPasswordTooShort, MinPasswordLength)
}
