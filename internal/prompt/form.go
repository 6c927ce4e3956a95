package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// runForm is swapped out in tests.
var runForm = func(form *huh.Form) error {
	return form.Run()
}

// FormPrompter asks both questions in a single huh form.
type FormPrompter struct {
	DefaultDirectory string
}

// Ask implements Prompter.
func (p *FormPrompter) Ask() (*Answers, error) {
	a := &Answers{Directory: defaultOr(p.DefaultDirectory)}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(nameQuestion).
				Value(&a.Name).
				Validate(requireName),
			huh.NewInput().
				Title(directoryQuestion).
				Value(&a.Directory),
		),
	)

	if err := runForm(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("prompt form: %w", err)
	}
	return finish(a)
}
