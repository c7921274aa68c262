package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"supercli/pkg/keymaps"
)

type checkboxModel struct {
	label    string
	choices  []string
	cursor   int
	selected map[int]bool

	done    bool
	aborted bool

	keys  keymaps.KeyMap
	theme Theme
}

func newCheckboxModel(label string, choices []string, keys keymaps.KeyMap, theme Theme) checkboxModel {
	return checkboxModel{
		label:    label,
		choices:  choices,
		selected: make(map[int]bool),
		keys:     keys,
		theme:    theme,
	}
}

func (m checkboxModel) Init() tea.Cmd {
	return nil
}

func (m checkboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(m.choices)) % len(m.choices)

	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(m.choices)

	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggle(m.cursor)

	case key.Matches(keyMsg, m.keys.ToggleAll):
		// Select everything unless everything is already selected
		all := len(m.selection()) == len(m.choices)
		for i := range m.choices {
			m.selected[i] = !all
		}

	case key.Matches(keyMsg, m.keys.Submit):
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m checkboxModel) toggle(i int) {
	m.selected[i] = !m.selected[i]
}

// selection returns the checked indices in list order
func (m checkboxModel) selection() []int {
	out := []int{}
	for i := range m.choices {
		if m.selected[i] {
			out = append(out, i)
		}
	}
	return out
}

func (m checkboxModel) View() string {
	if m.done {
		picked := make([]string, 0, len(m.choices))
		for _, i := range m.selection() {
			picked = append(picked, m.choices[i])
		}
		return m.theme.header(m.label, strings.Join(picked, ", ")) + "\n"
	}
	if m.aborted {
		return m.theme.header(m.label, "") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(m.theme.header(m.label, ""))
	sb.WriteString("\n")
	for i, choice := range m.choices {
		box := "◯"
		if m.selected[i] {
			box = "◉"
		}
		line := fmt.Sprintf("%s %s", box, choice)
		if i == m.cursor {
			sb.WriteString(m.theme.Cursor.Render("❯ " + line))
		} else {
			sb.WriteString(m.theme.Choice.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(m.theme.Help.Render(fmt.Sprintf("(%s to select, %s to toggle all, %s to proceed)",
		m.keys.Toggle.Help().Key, m.keys.ToggleAll.Help().Key, m.keys.Submit.Help().Key)))
	return sb.String()
}
