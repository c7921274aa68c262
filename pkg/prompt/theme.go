package prompt

import (
	"github.com/charmbracelet/lipgloss"

	"supercli/pkg/config"
)

// Theme holds the lipgloss styles shared by every prompt
type Theme struct {
	Question lipgloss.Style
	Label    lipgloss.Style
	Answer   lipgloss.Style
	Cursor   lipgloss.Style
	Choice   lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
}

// NewTheme builds prompt styles from the configured colors
func NewTheme(s config.Styles) Theme {
	return Theme{
		Question: lipgloss.NewStyle().Foreground(lipgloss.Color(s.SuccessColor)).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color(s.NormalTextColor)).Bold(true),
		Answer:   lipgloss.NewStyle().Foreground(lipgloss.Color(s.DueDateColor)),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color(s.AccentColor)).Bold(true),
		Choice:   lipgloss.NewStyle().Foreground(lipgloss.Color(s.NormalTextColor)),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color(s.MutedTextColor)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(s.ErrorColor)),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(s.SuccessColor)),
	}
}

// header renders "? label" followed by the answer once one is given
func (t Theme) header(label, answer string) string {
	h := t.Question.Render("?") + " " + t.Label.Render(label)
	if answer != "" {
		h += " " + t.Answer.Render(answer)
	}
	return h
}
