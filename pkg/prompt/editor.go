package prompt

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"supercli/pkg/keymaps"
)

type editorModel struct {
	label    string
	textarea textarea.Model
	opts     InputOptions
	err      string

	value   string
	done    bool
	aborted bool

	keys  keymaps.KeyMap
	theme Theme
}

func newEditorModel(label string, opts InputOptions, keys keymaps.KeyMap, theme Theme) editorModel {
	ta := textarea.New()
	ta.Placeholder = opts.Placeholder
	ta.CharLimit = 0
	ta.SetWidth(72)
	ta.SetHeight(10)
	ta.SetValue(opts.Default)
	ta.Focus()

	return editorModel{label: label, textarea: ta, opts: opts, keys: keys, theme: theme}
}

func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Abort):
			m.aborted = true
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Save):
			value := m.textarea.Value()
			if m.opts.Validate != nil {
				if err := m.opts.Validate(value); err != nil {
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
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m editorModel) View() string {
	if m.done {
		return m.theme.header(m.label, m.theme.Help.Render("Received")) + "\n"
	}
	if m.aborted {
		return m.theme.header(m.label, "") + "\n"
	}

	view := m.theme.header(m.label, "") + "\n" + m.textarea.View() + "\n" +
		m.theme.Help.Render(fmt.Sprintf("(%s to save)", m.keys.Save.Help().Key))
	if m.err != "" {
		view += "\n" + m.theme.Error.Render(">> "+m.err)
	}
	return view
}
