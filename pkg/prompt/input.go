package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"supercli/pkg/keymaps"
)

type inputModel struct {
	label string
	input textinput.Model
	opts  InputOptions
	err   string

	value   string
	done    bool
	aborted bool

	keys  keymaps.KeyMap
	theme Theme
}

func newInputModel(label string, opts InputOptions, keys keymaps.KeyMap, theme Theme) inputModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = opts.Placeholder
	if ti.Placeholder == "" && opts.Default != "" {
		ti.Placeholder = opts.Default
	}
	ti.Width = 60
	ti.Focus()

	return inputModel{label: label, input: ti, opts: opts, keys: keys, theme: theme}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Abort):
			m.aborted = true
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Submit):
			value := m.input.Value()
			if value == "" {
				value = m.opts.Default
			}
			if m.opts.Validate != nil {
				if err := m.opts.Validate(value); err != nil {
					// Keep the prompt open until the value passes
					m.err = err.Error()
					return m, nil
				}
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		}
		m.err = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return m.theme.header(m.label, m.value) + "\n"
	}
	if m.aborted {
		return m.theme.header(m.label, "") + "\n"
	}

	view := m.theme.header(m.label, "") + "\n" + m.input.View()
	if m.err != "" {
		view += "\n" + m.theme.Error.Render(">> "+m.err)
	}
	return view
}
