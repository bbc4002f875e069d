// Package models defines client-side data models shared by the session core,
// the authentication clients and the CLI.
package models

// Onboarding holds the answers collected by the post-registration flow.
// Keys are question identifiers ("country", "interests", ...).
type Onboarding map[string]any

// User is the profile attached to an authenticated session.
//
// The JSON shape is the durable contract of the "laqtaha_user" storage key:
// previously written records must keep decoding, so field names are fixed.
type User struct {
	ID              string     `json:"_id,omitempty"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	ProfileComplete bool       `json:"profileComplete"`
	Onboarding      Onboarding `json:"onboarding,omitempty"`
}

// Clone returns a deep copy of u. A nil receiver yields nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Onboarding = u.Onboarding.Clone()
	return &c
}

// Clone deep-copies nested maps and slices decoded from JSON.
func (o Onboarding) Clone() Onboarding {
	if o == nil {
		return nil
	}
	out := make(Onboarding, len(o))
	for k, v := range o {
		out[k] = cloneValue(v)
	}
	return out
}

// Merge returns a copy of o with every key of patch written over it.
func (o Onboarding) Merge(patch Onboarding) Onboarding {
	out := o.Clone()
	if out == nil {
		out = make(Onboarding, len(patch))
	}
	for k, v := range patch {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return map[string]any(Onboarding(t).Clone())
	case Onboarding:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
