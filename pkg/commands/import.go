package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"supercli/pkg/todo"
	"supercli/pkg/utils"
)

// A date header on a line of its own: DD.MM.YYYY: or YYYY-MM-DD:
var dateHeader = regexp.MustCompile(`^(?:(\d{2})\.(\d{2})\.(\d{4})|(\d{4})-(\d{2})-(\d{2})):?$`)

// ImportedTodo is one task line of a plain-text task list
type ImportedTodo struct {
	Fields    todo.Fields
	Completed bool
}

// ParseTaskList reads "- [ ] title" / "- [x] title" lines. A date header sets the due date of
// every task below it until the next header. Lines that are neither are ignored.
func ParseTaskList(r io.Reader) ([]ImportedTodo, error) {
	var (
		items   []ImportedTodo
		current = todo.NoDueDate()
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if m := dateHeader.FindStringSubmatch(line); m != nil {
			date := m[4] + "-" + m[5] + "-" + m[6]
			if m[1] != "" {
				date = m[3] + "-" + m[2] + "-" + m[1]
			}
			due, err := todo.ParseDueDate(date)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			current = due
			continue
		}

		if !strings.HasPrefix(line, "- ") {
			continue
		}
		text := strings.TrimSpace(strings.TrimPrefix(line, "- "))

		completed := false
		switch {
		case strings.HasPrefix(text, "[x]"), strings.HasPrefix(text, "[X]"):
			completed = true
			text = strings.TrimSpace(text[3:])
		case strings.HasPrefix(text, "[ ]"):
			text = strings.TrimSpace(text[3:])
		}
		if text == "" {
			continue
		}

		items = append(items, ImportedTodo{
			Fields:    todo.Fields{Title: text, Priority: todo.Medium, DueDate: current},
			Completed: completed,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// HandleImport appends every valid task of the text file to the todo store.
// Tasks failing validation are reported and skipped.
func HandleImport(env Env, filename string) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("reading import file: %w", err)
	}
	defer f.Close()

	items, err := ParseTaskList(f)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", filename, err)
	}

	c, err := loadTodos(env)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, item := range items {
		if err := todo.Validate(item.Fields); err != nil {
			fmt.Fprintf(env.Out, "Skipping %q: %v\n", item.Fields.Title, err)
			continue
		}
		var created todo.Todo
		c, created = todo.Add(c, item.Fields, env.Clock)
		if item.Completed {
			if c, err = todo.ToggleCompleted(c, created.ID); err != nil {
				return 0, err
			}
		}
		added++
	}

	if added > 0 {
		if err := env.Todos.SaveAll(c); err != nil {
			return 0, err
		}
	}

	utils.Logger().WithField("file", filename).WithField("count", added).Info("Imported todos")
	fmt.Fprintf(env.Out, "Successfully imported %d task(s) from %s\n", added, filename)
	return added, nil
}
