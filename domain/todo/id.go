package todo

import (
	"fmt"

	"github.com/google/uuid"
)

// ID is an opaque identifier for a Todo. It is a distinct type over a random
// UUID so todo IDs cannot be accidentally mixed with identifiers of unrelated
// entities. IDs compare with ==.
type ID uuid.UUID

// NewID generates a fresh random ID.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID reconstructs an ID from its string form. This is the trusted
// deserialization path for collaborators that persist or transmit todos.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("parsing todo id: %w", err)
	}
	return ID(u), nil
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseID.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
