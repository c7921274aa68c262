// Package prompt implements the interactive prompt surface (select, input, checkbox, editor)
// and the progress spinner as short-lived Bubble Tea programs.
package prompt

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"supercli/pkg/keymaps"
)

var (
	// ErrAborted is returned when the operator cancels a prompt
	ErrAborted = errors.New("prompt aborted")
	// ErrNoChoices is returned when a list prompt is opened without choices
	ErrNoChoices = errors.New("prompt needs at least one choice")
)

// ValidateFunc accepts a value or explains why it is rejected
type ValidateFunc func(string) error

// InputOptions configure a free-text or editor prompt
type InputOptions struct {
	// Default is returned when the operator submits an empty line, and pre-fills the editor
	Default     string
	Placeholder string
	// Validate is re-run on every submission; a failure keeps the prompt open
	Validate ValidateFunc
}

// SelectOptions configure a single-select prompt
type SelectOptions struct {
	// Default is the index the cursor starts on, so enter without moving keeps it
	Default int
}

// Prompter is the interactive prompt surface the managers drive
type Prompter interface {
	// Select returns the index of the chosen entry
	Select(label string, choices []string, opts SelectOptions) (int, error)
	// Input returns a single line of text
	Input(label string, opts InputOptions) (string, error)
	// Checkbox returns the indices of every checked entry in list order
	Checkbox(label string, choices []string) ([]int, error)
	// Editor returns multi-line text
	Editor(label string, opts InputOptions) (string, error)
}

// Terminal runs each prompt as a Bubble Tea program on the given streams
type Terminal struct {
	in    io.Reader
	out   io.Writer
	keys  keymaps.KeyMap
	theme Theme
}

// NewTerminal creates a prompter reading keys from in and drawing on out
func NewTerminal(in io.Reader, out io.Writer, keys keymaps.KeyMap, theme Theme) *Terminal {
	return &Terminal{in: in, out: out, keys: keys, theme: theme}
}

func (t *Terminal) Select(label string, choices []string, opts SelectOptions) (int, error) {
	if len(choices) == 0 {
		return 0, ErrNoChoices
	}
	final, err := t.run(newSelectModel(label, choices, opts.Default, t.keys, t.theme))
	if err != nil {
		return 0, err
	}
	m := final.(selectModel)
	if m.aborted {
		return 0, ErrAborted
	}
	return m.cursor, nil
}

func (t *Terminal) Input(label string, opts InputOptions) (string, error) {
	final, err := t.run(newInputModel(label, opts, t.keys, t.theme))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.value, nil
}

func (t *Terminal) Checkbox(label string, choices []string) ([]int, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}
	final, err := t.run(newCheckboxModel(label, choices, t.keys, t.theme))
	if err != nil {
		return nil, err
	}
	m := final.(checkboxModel)
	if m.aborted {
		return nil, ErrAborted
	}
	return m.selection(), nil
}

func (t *Terminal) Editor(label string, opts InputOptions) (string, error) {
	final, err := t.run(newEditorModel(label, opts, t.keys, t.theme))
	if err != nil {
		return "", err
	}
	m := final.(editorModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.value, nil
}

func (t *Terminal) run(m tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithOutput(t.out)}
	if t.in != nil {
		opts = append(opts, tea.WithInput(t.in))
	}
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}
