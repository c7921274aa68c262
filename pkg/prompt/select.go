package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"supercli/pkg/keymaps"
)

type selectModel struct {
	label   string
	choices []string
	cursor  int

	chosen  bool
	aborted bool

	keys  keymaps.KeyMap
	theme Theme
}

func newSelectModel(label string, choices []string, cursor int, keys keymaps.KeyMap, theme Theme) selectModel {
	if cursor < 0 || cursor >= len(choices) {
		cursor = 0
	}
	return selectModel{label: label, choices: choices, cursor: cursor, keys: keys, theme: theme}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		// Wrap around like the menu cursor does at the bottom
		m.cursor = (m.cursor - 1 + len(m.choices)) % len(m.choices)

	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(m.choices)

	case key.Matches(keyMsg, m.keys.Submit):
		m.chosen = true
		return m, tea.Quit
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.chosen {
		return m.theme.header(m.label, m.choices[m.cursor]) + "\n"
	}
	if m.aborted {
		return m.theme.header(m.label, "") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(m.theme.header(m.label, ""))
	sb.WriteString("\n")
	for i, choice := range m.choices {
		if i == m.cursor {
			sb.WriteString(m.theme.Cursor.Render("❯ " + choice))
		} else {
			sb.WriteString(m.theme.Choice.Render("  " + choice))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(m.theme.Help.Render("(use arrow keys, enter to select)"))
	return sb.String()
}
