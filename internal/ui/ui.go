// Package ui provides the console output layer.
//
// Components receive a [Logger] instead of writing to the process
// streams directly, so command output can be captured in tests without
// touching global state. The production implementation is [Console];
// tests use [Capture].
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Logger is the output capability handed to the pipeline components.
// Outputf writes user-facing results, Warningf non-fatal notices and
// Errorf fatal failures.
type Logger interface {
	Outputf(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Console writes output to stdout and warnings/errors to stderr,
// colored when the terminal supports it.
type Console struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewConsole returns a Console bound to the process streams.
func NewConsole() *Console {
	return &Console{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (c *Console) Outputf(format string, args ...any) {
	_, _ = fmt.Fprintln(c.Stdout, fmt.Sprintf(format, args...))
}

func (c *Console) Warningf(format string, args ...any) {
	msg := fmt.Sprintf("warning: %s", fmt.Sprintf(format, args...))
	_, _ = fmt.Fprintln(c.Stderr, warningStyle.Render(msg))
}

func (c *Console) Errorf(format string, args ...any) {
	msg := fmt.Sprintf("error: %s", fmt.Sprintf(format, args...))
	_, _ = fmt.Fprintln(c.Stderr, errorStyle.Render(msg))
}
