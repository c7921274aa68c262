package commands

import (
	"fmt"

	"supercli/pkg/todo"
	"supercli/pkg/utils"
)

// HandleAddTodo validates the fields and appends a new todo to the store
func HandleAddTodo(env Env, title, priority, due string) (todo.Todo, error) {
	p, err := todo.ParsePriority(priority)
	if err != nil {
		return todo.Todo{}, err
	}
	d, err := todo.ParseDueDate(due)
	if err != nil {
		return todo.Todo{}, err
	}

	f := todo.Fields{Title: title, Priority: p, DueDate: d}
	if err := todo.Validate(f); err != nil {
		return todo.Todo{}, err
	}

	c, err := loadTodos(env)
	if err != nil {
		return todo.Todo{}, err
	}
	c, created := todo.Add(c, f, env.Clock)
	if err := env.Todos.SaveAll(c); err != nil {
		return todo.Todo{}, err
	}

	utils.Logger().WithField("id", created.ID).Info("Added todo")
	fmt.Fprintf(env.Out, "Added todo %d: %s\n", created.ID, created.Title)
	return created, nil
}
