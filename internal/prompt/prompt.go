package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user aborts the prompt or leaves a
// required answer empty.
var ErrCancelled = errors.New("operation cancelled")

const (
	nameQuestion      = "What is the name of your MCP server?"
	directoryQuestion = "Where would you like to create it?"
)

// Answers holds the values collected interactively.
type Answers struct {
	Name      string
	Directory string
}

// Prompter asks the user for a project name and directory.
type Prompter interface {
	Ask() (*Answers, error)
}

// New returns a form-based Prompter when in is a terminal, and a line-based
// one reading from in and writing to out otherwise.
func New(in io.Reader, out io.Writer, defaultDir string) Prompter {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return &FormPrompter{DefaultDirectory: defaultDir}
	}
	return &LinePrompter{In: in, Out: out, DefaultDirectory: defaultDir}
}

// requireName rejects blank names.
func requireName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

// finish trims the answers and turns a missing value into ErrCancelled.
func finish(a *Answers) (*Answers, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Directory = strings.TrimSpace(a.Directory)
	if a.Name == "" || a.Directory == "" {
		return nil, ErrCancelled
	}
	return a, nil
}

// isTerminal reports whether f is an interactive terminal. Character devices
// such as /dev/null are not.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func defaultOr(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

func promptf(w io.Writer, format string, a ...any) {
	if w != nil {
		fmt.Fprintf(w, format, a...)
	}
}
