package ui

import "fmt"

// Capture records log lines for inspection in tests.
type Capture struct {
	Outputs  []string
	Warnings []string
	Errors   []string
}

func (c *Capture) Outputf(format string, args ...any) {
	c.Outputs = append(c.Outputs, fmt.Sprintf(format, args...))
}

func (c *Capture) Warningf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func (c *Capture) Errorf(format string, args ...any) {
	c.Errors = append(c.Errors, fmt.Sprintf(format, args...))
}
