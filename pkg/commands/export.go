package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"supercli/pkg/database"
	"supercli/pkg/notes"
	"supercli/pkg/store"
	"supercli/pkg/todo"
	"supercli/pkg/utils"
)

// Export formats
const (
	ExportJSON   = "json"
	ExportText   = "txt"
	ExportYAML   = "yaml"
	ExportSQLite = "sqlite"
)

// Store selections for export
const (
	StoreTodos = "todos"
	StoreNotes = "notes"
	StoreAll   = "all"
)

// exportDateLayout is the header format written by the txt export and read back by the import
const exportDateLayout = "02.01.2006"

// snapshot is the document written when both stores are exported together
type snapshot struct {
	Todos todo.Collection  `json:"todos,omitempty" yaml:"todos,omitempty"`
	Notes notes.Collection `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// HandleExport writes the selected stores to filename in the given format
func HandleExport(env Env, filename, exportType, which string) error {
	var (
		snap snapshot
		err  error
	)
	switch which {
	case StoreTodos, StoreNotes, StoreAll:
	default:
		return fmt.Errorf("unknown store %q: use todos, notes or all", which)
	}
	if which != StoreNotes {
		if snap.Todos, err = loadTodos(env); err != nil {
			return err
		}
	}
	if which != StoreTodos {
		if snap.Notes, err = loadNotes(env); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}

	var content []byte
	switch exportType {
	case ExportJSON:
		content, err = marshalJSON(snap, which)
	case ExportYAML:
		content, err = marshalYAML(snap, which)
	case ExportText:
		content = []byte(formatText(snap, which))
	case ExportSQLite:
		err = exportSQLite(filename, snap, which)
	default:
		return fmt.Errorf("unknown export type %q: use json, txt, yaml or sqlite", exportType)
	}
	if err != nil {
		return fmt.Errorf("exporting %s: %w", exportType, err)
	}

	if content != nil {
		if err := os.WriteFile(filename, content, 0644); err != nil {
			return fmt.Errorf("writing file: %w", err)
		}
	}

	utils.Logger().WithField("file", filename).WithField("type", exportType).Info("Exported records")
	fmt.Fprintf(env.Out, "Successfully exported %d todo(s) and %d note(s) to %s\n", len(snap.Todos), len(snap.Notes), filename)
	return nil
}

// A single store is exported in the same shape as its backing file
func marshalJSON(snap snapshot, which string) ([]byte, error) {
	switch which {
	case StoreTodos:
		return store.Encode(snap.Todos)
	case StoreNotes:
		return store.Encode(snap.Notes)
	}
	return store.Encode(snap)
}

func marshalYAML(snap snapshot, which string) ([]byte, error) {
	switch which {
	case StoreTodos:
		return yaml.Marshal(snap.Todos)
	case StoreNotes:
		return yaml.Marshal(snap.Notes)
	}
	return yaml.Marshal(snap)
}

// formatText writes todos as a task list the import command reads back, followed by the notes
func formatText(snap snapshot, which string) string {
	var lines []string

	if which != StoreNotes {
		// undated todos come first so no header applies to them on import
		lastDate := ""
		for _, t := range sortedForText(snap.Todos) {
			if d, ok := t.DueDate.Get(); ok && d != lastDate {
				lines = append(lines, "", formatHeaderDate(d)+":")
				lastDate = d
			}
			status := " "
			if t.Completed {
				status = "x"
			}
			lines = append(lines, fmt.Sprintf("- [%s] %s", status, t.Title))
		}
	}

	if which != StoreTodos {
		for _, g := range notes.GroupByCategory(snap.Notes) {
			lines = append(lines, "", "# "+g.Category)
			for _, n := range g.Notes {
				lines = append(lines, "", "## "+n.Title, n.Content)
			}
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}

func sortedForText(c todo.Collection) todo.Collection {
	undated := todo.Filter(c, func(t todo.Todo) bool { return !t.DueDate.IsSet() })
	dated := todo.Filter(c, func(t todo.Todo) bool { return t.DueDate.IsSet() })
	return append(undated, todo.Sort(dated, todo.SortByDueDate, false)...)
}

func formatHeaderDate(d string) string {
	t, err := time.Parse(todo.DateLayout, d)
	if err != nil {
		return d
	}
	return t.Format(exportDateLayout)
}

func exportSQLite(filename string, snap snapshot, which string) error {
	db, err := database.ConnectDB(filename)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		return err
	}
	if which != StoreNotes {
		if err := database.ReplaceTodos(db, snap.Todos); err != nil {
			return err
		}
	}
	if which != StoreTodos {
		if err := database.ReplaceNotes(db, snap.Notes); err != nil {
			return err
		}
	}
	return nil
}
