// Package prompt asks the user yes/no questions on an interactive terminal.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/terminal"
)

// ErrRequiresTerminal is returned when a prompt is attempted without a terminal.
var ErrRequiresTerminal = errors.New(messages.PromptRequiresTerminal)

// Confirmer asks yes/no questions.
type Confirmer interface {
	Confirm(title string, defaultYes bool) (bool, error)
}

// HuhConfirmer implements Confirmer with a huh confirm field rendered on stderr.
type HuhConfirmer struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhConfirmer returns a HuhConfirmer that checks terminal.IsInteractive.
func NewHuhConfirmer() *HuhConfirmer {
	return &HuhConfirmer{isTerminal: terminal.IsInteractive}
}

// Confirm shows title and returns the answer. Esc and Ctrl+C answer "no".
func (c *HuhConfirmer) Confirm(title string, defaultYes bool) (bool, error) {
	checker := c.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if !checker() {
		return false, ErrRequiresTerminal
	}

	value := defaultYes
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative(messages.PromptAffirmative).
				Negative(messages.PromptNegative).
				Value(&value),
		),
	)
	form.WithKeyMap(confirmKeyMap())
	form.WithProgramOptions(tea.WithOutput(os.Stderr))

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value, nil
}

func confirmKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	return km
}
