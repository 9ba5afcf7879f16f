package todo

import (
	"encoding/json"
	"strings"
)

// Description is an optional free-text note on a Todo. Blank input (empty or
// whitespace-only) normalizes to the absent state at construction, so a
// Description is never present-but-blank. The zero value is the absent state.
type Description struct {
	value   string
	present bool
}

// NewDescription wraps a description string. It is total: blank input yields
// the absent state, anything else is stored exactly as given (no trimming).
func NewDescription(value string) Description {
	if strings.TrimSpace(value) == "" {
		return Description{}
	}
	return Description{value: value, present: true}
}

// EmptyDescription returns the absent state.
func EmptyDescription() Description {
	return Description{}
}

// Value returns the wrapped string and whether a description is present.
func (d Description) Value() (string, bool) {
	return d.value, d.present
}

// IsEmpty reports whether the description is absent.
func (d Description) IsEmpty() bool {
	return !d.present
}

// MarshalJSON encodes the absent state as null and the present state as the
// wrapped string.
func (d Description) MarshalJSON() ([]byte, error) {
	if !d.present {
		return []byte("null"), nil
	}
	return json.Marshal(d.value)
}

// UnmarshalJSON decodes null as absent and a string through NewDescription,
// so a blank persisted value cannot resurrect a present-but-blank state.
func (d *Description) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Description{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = NewDescription(s)
	return nil
}
