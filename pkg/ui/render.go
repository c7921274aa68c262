package ui

import (
	"fmt"
	"strings"

	"supercli/pkg/notes"
	"supercli/pkg/store"
	"supercli/pkg/todo"
)

const displayTimeLayout = "2006-01-02 15:04:05"

// RenderTodos renders the numbered todo list in collection order
func RenderTodos(c todo.Collection, st Styles) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(st.TitleBar.Render("Your Todo List"))
	sb.WriteString("\n\n")

	for i, t := range c {
		sb.WriteString(RenderTodoLine(i+1, t, st))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderTodoLine renders one entry as "N. ✗ title [Priority] (Due: date)"
func RenderTodoLine(n int, t todo.Todo, st Styles) string {
	status := st.Pending.Render("✗")
	title := t.Title
	if t.Completed {
		status = st.Done.Render("✓")
		title = st.Finished.Render(t.Title)
	}

	line := fmt.Sprintf("%d. %s %s [%s]", n, status, title, st.priority(t.Priority).Render(string(t.Priority)))
	if due, ok := t.DueDate.Get(); ok {
		line += " " + st.DueDate.Render(fmt.Sprintf("(Due: %s)", due))
	}
	return line
}

// todoChoice labels a todo in select and checkbox prompts
func todoChoice(t todo.Todo) string {
	if t.Completed {
		return "✓ " + t.Title
	}
	return "✗ " + t.Title
}

// RenderNotes renders notes grouped by category in first-seen order
func RenderNotes(c notes.Collection, st Styles) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(st.TitleBar.Render("Your Notes"))
	sb.WriteString("\n")

	for _, g := range notes.GroupByCategory(c) {
		sb.WriteString("\n")
		sb.WriteString(st.Heading.Render(g.Category + ":"))
		sb.WriteString("\n")
		for i, n := range g.Notes {
			sb.WriteString(st.Text.Render(fmt.Sprintf("%d. %s", i+1, n.Title)))
			sb.WriteString("\n")
			sb.WriteString(st.Muted.Render("   Created: " + displayTime(n.CreatedAt)))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderNote renders the full detail of one note
func RenderNote(n notes.Note, st Styles) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(st.TitleBar.Render("Note Details"))
	sb.WriteString("\n\n")
	sb.WriteString(st.Category.Render("Title: " + n.Title))
	sb.WriteString("\n")
	sb.WriteString(st.Category.Render("Category: " + n.Category))
	sb.WriteString("\n")
	sb.WriteString(st.Category.Render("Content:"))
	sb.WriteString("\n")
	sb.WriteString(st.Text.Render(n.Content))
	sb.WriteString("\n\n")
	sb.WriteString(st.Muted.Render("Created: " + displayTime(n.CreatedAt)))
	sb.WriteString("\n")
	sb.WriteString(st.Muted.Render("Updated: " + displayTime(n.UpdatedAt)))
	sb.WriteString("\n")
	return sb.String()
}

// noteChoice labels a note in select and checkbox prompts
func noteChoice(n notes.Note) string {
	return fmt.Sprintf("%s (%s)", n.Title, n.Category)
}

func displayTime(ts store.Timestamp) string {
	return ts.Local().Format(displayTimeLayout)
}
