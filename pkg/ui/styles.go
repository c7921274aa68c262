package ui

import (
	"github.com/charmbracelet/lipgloss"

	"supercli/pkg/config"
	"supercli/pkg/todo"
)

// Styles holds the lipgloss styles used to render records and messages
type Styles struct {
	TitleBar lipgloss.Style
	Heading  lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Welcome  lipgloss.Style
	Done     lipgloss.Style
	Pending  lipgloss.Style
	Finished lipgloss.Style
	DueDate  lipgloss.Style
	Category lipgloss.Style
	Priority map[todo.Priority]lipgloss.Style
}

// NewStyles builds the render styles from the configured colors
func NewStyles(s config.Styles) Styles {
	color := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Styles{
		TitleBar: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(s.SelectedTextColor)).
			Background(lipgloss.Color(s.AccentColor)).
			Padding(0, 1),
		Heading:  color(s.CategoryColor).Bold(true),
		Text:     color(s.NormalTextColor),
		Muted:    color(s.MutedTextColor),
		Warning:  color(s.WarningColor),
		Error:    color(s.ErrorColor),
		Welcome:  color(s.CategoryColor),
		Done:     color(s.SuccessColor),
		Pending:  color(s.ErrorColor),
		Finished: lipgloss.NewStyle().Strikethrough(true),
		DueDate:  color(s.DueDateColor),
		Category: color(s.CategoryColor),
		Priority: map[todo.Priority]lipgloss.Style{
			todo.High:   color(s.HighPriorityColor),
			todo.Medium: color(s.MediumPriorityColor),
			todo.Low:    color(s.LowPriorityColor),
		},
	}
}

// PlainStyles renders everything without decoration
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		TitleBar: plain,
		Heading:  plain,
		Text:     plain,
		Muted:    plain,
		Warning:  plain,
		Error:    plain,
		Welcome:  plain,
		Done:     plain,
		Pending:  plain,
		Finished: plain,
		DueDate:  plain,
		Category: plain,
		Priority: map[todo.Priority]lipgloss.Style{},
	}
}

func (s Styles) priority(p todo.Priority) lipgloss.Style {
	if st, ok := s.Priority[p]; ok {
		return st
	}
	return s.Text
}
