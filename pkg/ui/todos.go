package ui

import (
	"fmt"
	"io"
	"slices"

	"supercli/pkg/prompt"
	"supercli/pkg/store"
	"supercli/pkg/todo"
	"supercli/pkg/utils"
)

// Todo menu entries, in display order
const (
	ViewTodos   = "View Todos"
	AddTodo     = "Add Todo"
	EditTodo    = "Edit Todo"
	ToggleTodo  = "Toggle Todo"
	DeleteTodo  = "Delete Todo"
	BackToMain  = "Back to Main Menu"
	clearDueKey = "none"
)

var todoActions = []string{ViewTodos, AddTodo, EditTodo, ToggleTodo, DeleteTodo, BackToMain}

// TodoManager is the interactive controller for the todo store
type TodoManager struct {
	session
	store *store.Gateway[todo.Todo]
	clock store.Clock
}

// NewTodoManager creates a todo controller over gw
func NewTodoManager(gw *store.Gateway[todo.Todo], p prompt.Prompter, progress prompt.Progress, clock store.Clock, out io.Writer, styles Styles) *TodoManager {
	return &TodoManager{
		session: session{prompter: p, progress: progress, out: out, styles: styles},
		store:   gw,
		clock:   clock,
	}
}

// Run loops over the todo menu until the operator goes back to the main menu
func (m *TodoManager) Run() error {
	if err := m.store.EnsureInitialized(); err != nil {
		return err
	}

	for {
		choice, err := m.prompter.Select(menuLabel, todoActions, prompt.SelectOptions{})
		if err != nil {
			return err
		}

		action := todoActions[choice]
		utils.Logger().WithField("action", action).Debug("Todo menu")

		switch action {
		case ViewTodos:
			err = m.view()
		case AddTodo:
			err = m.add()
		case EditTodo:
			err = m.edit()
		case ToggleTodo:
			err = m.toggle()
		case DeleteTodo:
			err = m.delete()
		case BackToMain:
			return nil
		}

		if err := m.reportStale(err, "todo"); err != nil {
			return err
		}
	}
}

func (m *TodoManager) view() error {
	c, err := m.store.LoadAll()
	if err != nil {
		return err
	}
	if len(c) == 0 {
		m.warn("No todos yet! Add some tasks to get started.")
		return nil
	}
	m.print(RenderTodos(c, m.styles) + "\n")
	return nil
}

func (m *TodoManager) add() error {
	title, err := m.prompter.Input("What do you need to do?", prompt.InputOptions{Validate: todo.ValidateTitle})
	if err != nil {
		return err
	}
	priority, err := m.askPriority("Select priority:", todo.High)
	if err != nil {
		return err
	}
	due, err := m.prompter.Input("Due date (YYYY-MM-DD) - press enter to skip:", prompt.InputOptions{
		Placeholder: todo.DateLayout,
		Validate:    todo.ValidateDueDate,
	})
	if err != nil {
		return err
	}
	dueDate, err := todo.ParseDueDate(due)
	if err != nil {
		return err
	}

	c, err := m.store.LoadAll()
	if err != nil {
		return err
	}
	c, created := todo.Add(c, todo.Fields{Title: title, Priority: priority, DueDate: dueDate}, m.clock)
	utils.Logger().WithField("id", created.ID).Info("Adding todo")

	return m.save("Adding todo...", "Todo added successfully!", func() error {
		return m.store.SaveAll(c)
	})
}

func (m *TodoManager) edit() error {
	c, err := m.store.LoadAll()
	if err != nil {
		return err
	}
	if len(c) == 0 {
		m.warn("No todos to edit!")
		return nil
	}

	idx, err := m.prompter.Select("Which todo would you like to edit?", todoChoices(c), prompt.SelectOptions{})
	if err != nil {
		return err
	}
	current := c[idx]

	title, err := m.prompter.Input("Edit title:", prompt.InputOptions{
		Default:  current.Title,
		Validate: todo.ValidateTitle,
	})
	if err != nil {
		return err
	}
	priority, err := m.askPriority(fmt.Sprintf("Select priority (currently %s):", current.Priority), current.Priority)
	if err != nil {
		return err
	}
	due, err := m.prompter.Input(fmt.Sprintf("Due date (YYYY-MM-DD) - enter keeps it, %q clears it:", clearDueKey), prompt.InputOptions{
		Default:  current.DueDate.String(),
		Validate: validateDueEdit,
	})
	if err != nil {
		return err
	}
	dueDate := todo.NoDueDate()
	if due != clearDueKey {
		if dueDate, err = todo.ParseDueDate(due); err != nil {
			return err
		}
	}

	// reload so the edit applies to the current file contents
	c, err = m.store.LoadAll()
	if err != nil {
		return err
	}
	c, err = todo.Update(c, current.ID, todo.Fields{Title: title, Priority: priority, DueDate: dueDate})
	if err != nil {
		return err
	}

	return m.save("Updating todo...", "Todo updated successfully!", func() error {
		return m.store.SaveAll(c)
	})
}

func (m *TodoManager) toggle() error {
	c, err := m.store.LoadAll()
	if err != nil {
		return err
	}
	if len(c) == 0 {
		m.warn("No todos to toggle!")
		return nil
	}

	idx, err := m.prompter.Select("Which todo would you like to toggle?", todoChoices(c), prompt.SelectOptions{})
	if err != nil {
		return err
	}
	id := c[idx].ID

	c, err = m.store.LoadAll()
	if err != nil {
		return err
	}
	c, err = todo.ToggleCompleted(c, id)
	if err != nil {
		return err
	}

	return m.save("Updating todo...", "Todo updated successfully!", func() error {
		return m.store.SaveAll(c)
	})
}

func (m *TodoManager) delete() error {
	c, err := m.store.LoadAll()
	if err != nil {
		return err
	}
	if len(c) == 0 {
		m.warn("No todos to delete!")
		return nil
	}

	picked, err := m.prompter.Checkbox("Select todos to delete:", todoChoices(c))
	if err != nil {
		return err
	}
	if len(picked) == 0 {
		m.warn("No todos selected for deletion.")
		return nil
	}

	ids := store.NewIDSet()
	for _, i := range picked {
		ids[c[i].ID] = struct{}{}
	}

	c, err = m.store.LoadAll()
	if err != nil {
		return err
	}
	c = c.RemoveByIDs(ids)

	return m.save("Deleting todos...", "Todos deleted successfully!", func() error {
		return m.store.SaveAll(c)
	})
}

// askPriority starts the cursor on current so enter keeps it
func (m *TodoManager) askPriority(label string, current todo.Priority) (todo.Priority, error) {
	choices := make([]string, len(todo.Priorities))
	for i, p := range todo.Priorities {
		choices[i] = string(p)
	}
	idx, err := m.prompter.Select(label, choices, prompt.SelectOptions{Default: slices.Index(todo.Priorities, current)})
	if err != nil {
		return "", err
	}
	return todo.Priorities[idx], nil
}

func validateDueEdit(s string) error {
	if s == clearDueKey {
		return nil
	}
	return todo.ValidateDueDate(s)
}

func todoChoices(c todo.Collection) []string {
	choices := make([]string, len(c))
	for i, t := range c {
		choices[i] = todoChoice(t)
	}
	return choices
}
