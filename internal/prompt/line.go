package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter reads answers one line at a time. It is used when stdin is not
// a terminal, e.g. when answers are piped in.
type LinePrompter struct {
	In               io.Reader
	Out              io.Writer
	DefaultDirectory string
}

// Ask implements Prompter. End of input before a name is given cancels.
// An empty directory line selects the default.
func (p *LinePrompter) Ask() (*Answers, error) {
	reader := bufio.NewReader(p.In)
	a := &Answers{}

	for {
		promptf(p.Out, "? %s ", nameQuestion)
		line, eof, err := readLine(reader)
		if err != nil {
			return nil, fmt.Errorf("reading name: %w", err)
		}
		verr := requireName(line)
		if verr == nil {
			a.Name = line
			break
		}
		if eof {
			return nil, ErrCancelled
		}
		promptf(p.Out, "%s\n", verr)
	}

	def := defaultOr(p.DefaultDirectory)
	promptf(p.Out, "? %s (%s) ", directoryQuestion, def)
	line, eof, err := readLine(reader)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	switch {
	case line != "":
		a.Directory = line
	case eof:
		// Input closed without an answer.
		return nil, ErrCancelled
	default:
		a.Directory = def
	}

	return finish(a)
}

// readLine returns the trimmed line and whether input ended while reading it.
func readLine(r *bufio.Reader) (string, bool, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return strings.TrimSpace(line), true, nil
		}
		return "", false, err
	}
	return strings.TrimSpace(line), false, nil
}
