// Package ui provides colored console output for the CLI.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Console writes styled status lines. Colors are dropped automatically when
// the output is not a terminal or NO_COLOR is set.
type Console struct {
	Out io.Writer
	Err io.Writer

	info    *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	plain   *color.Color
}

// New creates a Console writing normal output to out and failures to errOut.
func New(out, errOut io.Writer) *Console {
	return &Console{
		Out:     out,
		Err:     errOut,
		info:    color.New(color.FgBlue),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		plain:   color.New(color.FgWhite),
	}
}

// Info prints a progress line in blue.
func (c *Console) Info(format string, a ...any) {
	c.info.Fprintf(c.Out, format+"\n", a...)
}

// Success prints a completion line in green.
func (c *Console) Success(format string, a ...any) {
	c.success.Fprintf(c.Out, format+"\n", a...)
}

// Notice prints a highlighted line in yellow, such as a section header or
// a cancellation notice.
func (c *Console) Notice(format string, a ...any) {
	c.warn.Fprintf(c.Out, format+"\n", a...)
}

// Step prints an indented instruction line.
func (c *Console) Step(format string, a ...any) {
	c.plain.Fprintf(c.Out, "  "+format+"\n", a...)
}

// Detail prints an unstyled indented line, used for verbose file listings.
func (c *Console) Detail(format string, a ...any) {
	fmt.Fprintf(c.Out, "  "+format+"\n", a...)
}

// Warn prints a warning to the error stream.
func (c *Console) Warn(format string, a ...any) {
	c.warn.Fprintf(c.Err, "warning: "+format+"\n", a...)
}

// Error prints a failure line in red to the error stream.
func (c *Console) Error(format string, a ...any) {
	c.fail.Fprintf(c.Err, format+"\n", a...)
}
