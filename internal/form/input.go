package form

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/noah-isme/sigue-client/internal/models"
)

// Input is the raw state of a form: free-text fields and multi-select lists,
// exactly as typed or picked by the user.
type Input struct {
	Fields map[string]string
	Lists  map[string][]string
}

// NewInput returns an empty form state.
func NewInput() Input {
	return Input{Fields: map[string]string{}, Lists: map[string][]string{}}
}

// Set stores a text field.
func (in Input) Set(field, value string) Input {
	if in.Fields == nil {
		in.Fields = map[string]string{}
	}
	in.Fields[field] = value
	return in
}

// Pick appends values to a multi-select list.
func (in Input) Pick(field string, values ...string) Input {
	if in.Lists == nil {
		in.Lists = map[string][]string{}
	}
	in.Lists[field] = append(in.Lists[field], values...)
	return in
}

// Clone returns a deep copy of the form state.
func (in Input) Clone() Input {
	out := NewInput()
	for k, v := range in.Fields {
		out.Fields[k] = v
	}
	for k, v := range in.Lists {
		out.Lists[k] = append([]string(nil), v...)
	}
	return out
}

// Text returns the trimmed value of a text field.
func (in Input) Text(field string) string {
	return strings.TrimSpace(in.Fields[field])
}

// Normalized returns the trimmed value of field in Unicode NFC, so an accent
// typed as a combining mark matches its precomposed letter.
func (in Input) Normalized(field string) string {
	return norm.NFC.String(in.Text(field))
}

// List returns the trimmed, non-empty entries of a multi-select list.
func (in Input) List(field string) []string {
	raw := in.Lists[field]
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Mode tells the validator which record the form targets and whether the
// caller is restricted to self-service fields.
type Mode struct {
	Identity   models.Identity
	Restricted bool
}

// Creating reports whether the form describes a new record.
func (m Mode) Creating() bool {
	return !m.Identity.IsPersisted()
}
