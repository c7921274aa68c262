package commands

import (
	"bufio"
	"fmt"
	"strings"

	"supercli/pkg/store"
	"supercli/pkg/todo"
	"supercli/pkg/utils"
)

// PurgeOptions narrow which todos a purge removes. With no filter every todo matches.
type PurgeOptions struct {
	Done   bool
	Undone bool
	// Date matches todos due on that day (YYYY-MM-DD)
	Date string
	// Yes skips the confirmation prompt
	Yes bool
}

// HandlePurge removes every todo matching opts after asking for confirmation.
// It returns the number of removed todos.
func HandlePurge(env Env, opts PurgeOptions) (int, error) {
	if opts.Done && opts.Undone {
		return 0, fmt.Errorf("--done and --undone are mutually exclusive")
	}
	if err := todo.ValidateDueDate(opts.Date); err != nil {
		return 0, err
	}

	c, err := loadTodos(env)
	if err != nil {
		return 0, err
	}

	matched := todo.Filter(c, purgeFilter(opts))
	if len(matched) == 0 {
		fmt.Fprintln(env.Out, "No todos match.")
		return 0, nil
	}

	if !opts.Yes && !confirm(env, fmt.Sprintf("Are you sure you want to delete %d todo(s)? (y/N): ", len(matched))) {
		fmt.Fprintln(env.Out, "Operation cancelled.")
		return 0, nil
	}

	c = c.RemoveByIDs(store.NewIDSet(matched.IDs()...))
	if err := env.Todos.SaveAll(c); err != nil {
		return 0, err
	}

	utils.Logger().WithField("count", len(matched)).Info("Purged todos")
	fmt.Fprintf(env.Out, "Successfully deleted %d todo(s)\n", len(matched))
	return len(matched), nil
}

func purgeFilter(opts PurgeOptions) func(todo.Todo) bool {
	byStatus := statusFilter(opts.Done, opts.Undone)
	return func(t todo.Todo) bool {
		if !byStatus(t) {
			return false
		}
		if opts.Date != "" {
			d, ok := t.DueDate.Get()
			return ok && d == opts.Date
		}
		return true
	}
}

func confirm(env Env, question string) bool {
	fmt.Fprint(env.Out, question)
	if env.In == nil {
		return false
	}
	response, _ := bufio.NewReader(env.In).ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
