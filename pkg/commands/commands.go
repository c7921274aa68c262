// Package commands implements the non-interactive subcommands. Each handler loads the
// affected store, applies one collection operation and saves it back, like the menus do.
package commands

import (
	"io"

	"supercli/pkg/notes"
	"supercli/pkg/store"
	"supercli/pkg/todo"
	"supercli/pkg/ui"
)

// Env carries the stores and streams every command handler works with
type Env struct {
	Todos  *store.Gateway[todo.Todo]
	Notes  *store.Gateway[notes.Note]
	Clock  store.Clock
	In     io.Reader
	Out    io.Writer
	Styles ui.Styles
}

func loadTodos(env Env) (todo.Collection, error) {
	if err := env.Todos.EnsureInitialized(); err != nil {
		return nil, err
	}
	return env.Todos.LoadAll()
}

func loadNotes(env Env) (notes.Collection, error) {
	if err := env.Notes.EnsureInitialized(); err != nil {
		return nil, err
	}
	return env.Notes.LoadAll()
}
