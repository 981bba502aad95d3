package slice

import (
	"errors"
	"strings"
)

// ErrInvalidName is wrapped by every slice name validation failure.
var ErrInvalidName = errors.New("invalid slice name")

const invalidNameChars = `/\:*?"<>|`

// NameError describes why a slice name was rejected. Its message is meant to
// be shown to the user as-is.
type NameError struct {
	Msg string
}

func (e *NameError) Error() string { return e.Msg }

func (e *NameError) Unwrap() error { return ErrInvalidName }

// ValidateName checks a user-supplied slice name. The name is trimmed before
// the character and dot checks; a trailing space in the raw input is rejected
// on its own.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return &NameError{Msg: "Slice name cannot be empty or just whitespace."}
	case strings.ContainsAny(trimmed, invalidNameChars):
		return &NameError{Msg: `Slice name contains invalid characters (e.g., / \ : * ? " < > |).`}
	case trimmed == "." || trimmed == "..":
		return &NameError{Msg: "Slice name cannot be '.' or '..'."}
	case strings.HasPrefix(trimmed, "."), strings.HasSuffix(trimmed, "."), strings.HasSuffix(name, " "):
		return &NameError{Msg: "Slice name cannot start or end with a dot or space."}
	}
	return nil
}
