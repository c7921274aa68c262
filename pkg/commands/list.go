package commands

import (
	"fmt"

	"supercli/pkg/todo"
	"supercli/pkg/ui"
)

// ListOptions select and order the todos printed by HandleListTodos
type ListOptions struct {
	SortBy todo.SortBy
	Desc   bool
	Done   bool
	Undone bool
}

// HandleListTodos prints the todo list, optionally filtered and sorted
func HandleListTodos(env Env, opts ListOptions) error {
	c, err := loadTodos(env)
	if err != nil {
		return err
	}
	if len(c) == 0 {
		fmt.Fprintln(env.Out, "No todos yet! Add some tasks to get started.")
		return nil
	}

	c = todo.Filter(c, statusFilter(opts.Done, opts.Undone))
	if opts.SortBy != "" {
		c = todo.Sort(c, opts.SortBy, opts.Desc)
	}
	fmt.Fprint(env.Out, ui.RenderTodos(c, env.Styles))
	return nil
}

// HandleListNotes prints every note grouped by category
func HandleListNotes(env Env) error {
	c, err := loadNotes(env)
	if err != nil {
		return err
	}
	if len(c) == 0 {
		fmt.Fprintln(env.Out, "No notes yet! Add some notes to get started.")
		return nil
	}
	fmt.Fprint(env.Out, ui.RenderNotes(c, env.Styles))
	return nil
}

func statusFilter(done, undone bool) func(todo.Todo) bool {
	return func(t todo.Todo) bool {
		switch {
		case done:
			return t.Completed
		case undone:
			return !t.Completed
		}
		return true
	}
}
