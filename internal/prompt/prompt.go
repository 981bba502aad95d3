// Package prompt asks the user for layer, slice name and segment choices.
package prompt

import "errors"

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("prompt cancelled")

// Prompter is the interactive surface the scaffold flow depends on.
type Prompter interface {
	// Select asks for exactly one of options.
	Select(message string, options []string) (string, error)
	// Input asks for free text. validate returns nil for acceptable input.
	Input(message string, validate func(string) error) (string, error)
	// MultiSelect asks for any subset of options, with defaults preselected.
	MultiSelect(message string, options, defaults []string) ([]string, error)
}
