package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// IO holds the streams survey reads from and renders to.
type IO struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err terminal.FileWriter
}

// StdIO is the process terminal.
var StdIO = IO{
	In:  os.Stdin,
	Out: os.Stdout,
	Err: os.Stderr,
}

// Survey implements Prompter with github.com/AlecAivazis/survey/v2.
type Survey struct {
	io IO
}

// NewSurvey returns a Survey prompter bound to the given streams.
func NewSurvey(stdio IO) *Survey {
	return &Survey{io: stdio}
}

func (s *Survey) opts(extra ...survey.AskOpt) []survey.AskOpt {
	return append([]survey.AskOpt{survey.WithStdio(s.io.In, s.io.Out, s.io.Err)}, extra...)
}

func (s *Survey) Select(message string, options []string) (string, error) {
	var answer string
	q := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(q, &answer, s.opts()...); err != nil {
		return "", translate(err)
	}
	return answer, nil
}

func (s *Survey) Input(message string, validate func(string) error) (string, error) {
	var answer string
	q := &survey.Input{Message: message}

	var extra []survey.AskOpt
	if validate != nil {
		extra = append(extra, survey.WithValidator(Validator(validate)))
	}
	if err := survey.AskOne(q, &answer, s.opts(extra...)...); err != nil {
		return "", translate(err)
	}
	return answer, nil
}

func (s *Survey) MultiSelect(message string, options, defaults []string) ([]string, error) {
	var answer []string
	q := &survey.MultiSelect{
		Message: message,
		Options: options,
	}
	if len(defaults) > 0 {
		q.Default = defaults
	}
	if err := survey.AskOne(q, &answer, s.opts()...); err != nil {
		return nil, translate(err)
	}
	return answer, nil
}

// Validator adapts a string validation function to survey's untyped validator.
func Validator(validate func(string) error) survey.Validator {
	return func(ans interface{}) error {
		str, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected text input, got %T", ans)
		}
		return validate(str)
	}
}

// translate maps survey's interrupt to ErrCancelled.
func translate(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCancelled
	}
	return err
}
