// Package notify reports outcomes of a scaffold run to the user.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// Level is the severity of a notification.
type Level int

const (
	Info Level = iota
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Warn:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) color() string {
	switch l {
	case Warn:
		return ansiYellow
	case Error:
		return ansiRed
	default:
		return ansiCyan
	}
}

// Notifier shows fire-and-forget messages.
type Notifier interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Console writes one prefixed line per notification.
type Console struct {
	w     io.Writer
	color bool
}

// NewConsole writes to w without colour.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// NewStderr writes to os.Stderr, coloured when it is a terminal and NO_COLOR
// is unset.
func NewStderr() *Console {
	c := NewConsole(os.Stderr)
	c.color = os.Getenv("NO_COLOR") == "" &&
		(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
	return c
}

func (c *Console) Info(format string, args ...any)  { c.emit(Info, format, args...) }
func (c *Console) Warn(format string, args ...any)  { c.emit(Warn, format, args...) }
func (c *Console) Error(format string, args ...any) { c.emit(Error, format, args...) }

func (c *Console) emit(level Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if c.color {
		fmt.Fprintf(c.w, "%s%s:%s %s\n", level.color(), level, ansiReset, msg)
		return
	}
	fmt.Fprintf(c.w, "%s: %s\n", level, msg)
}
