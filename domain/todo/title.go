package todo

import (
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/todo-core/domain"
)

// MaxTitleLength is the maximum title length in runes.
const MaxTitleLength = 200

// Title is a validated todo title. The zero value is invalid; the only public
// constructor is NewTitle, so every Title obtained through the API is
// guaranteed non-blank and within length for its lifetime.
type Title struct {
	value string
}

// NewTitle validates and wraps a title string. The input is stored exactly as
// given (no trimming); the blank check is whitespace-insensitive. It fails
// with a *domain.ValidationError when the input is empty or whitespace-only,
// or longer than MaxTitleLength runes.
func NewTitle(value string) (Title, error) {
	if strings.TrimSpace(value) == "" {
		return Title{}, domain.NewValidationError("title", "Title cannot be empty")
	}
	if utf8.RuneCountInString(value) > MaxTitleLength {
		return Title{}, domain.NewValidationError("title", "Title cannot exceed 200 characters")
	}
	return Title{value: value}, nil
}

// Value returns the wrapped string.
func (t Title) Value() string {
	return t.value
}

// String implements fmt.Stringer.
func (t Title) String() string {
	return t.value
}

// MarshalText implements encoding.TextMarshaler.
func (t Title) MarshalText() ([]byte, error) {
	return []byte(t.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It revalidates through
// NewTitle so deserialization cannot produce a Title that construction would
// have rejected.
func (t *Title) UnmarshalText(text []byte) error {
	title, err := NewTitle(string(text))
	if err != nil {
		return err
	}
	*t = title
	return nil
}
