package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"supercli/pkg/commands"
	"supercli/pkg/todo"
)

func (a *app) todoCommand() *cobra.Command {
	todoCmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos without the menu",
	}

	var priority, due string
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := commands.HandleAddTodo(a.env, args[0], priority, due)
			return err
		},
	}
	addCmd.Flags().StringVarP(&priority, "priority", "p", string(todo.Medium), "Priority (High, Medium, Low)")
	addCmd.Flags().StringVarP(&due, "due", "d", "", "Due date (YYYY-MM-DD)")

	var (
		opts   commands.ListOptions
		sortBy string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the todo list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sortBy != "" {
				by, err := todo.ParseSortBy(sortBy)
				if err != nil {
					return err
				}
				opts.SortBy = by
			}
			return commands.HandleListTodos(a.env, opts)
		},
	}
	listCmd.Flags().StringVarP(&sortBy, "sort", "s", "", "Sort by created, title, due, priority or status")
	listCmd.Flags().BoolVar(&opts.Desc, "desc", false, "Reverse the sort order")
	listCmd.Flags().BoolVar(&opts.Done, "done", false, "Only completed todos")
	listCmd.Flags().BoolVar(&opts.Undone, "undone", false, "Only open todos")
	listCmd.MarkFlagsMutuallyExclusive("done", "undone")

	todoCmd.AddCommand(addCmd, listCmd)
	return todoCmd
}

func (a *app) notesCommand() *cobra.Command {
	notesCmd := &cobra.Command{
		Use:   "notes",
		Short: "Inspect notes without the menu",
	}
	notesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print all notes grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.HandleListNotes(a.env)
		},
	})
	return notesCmd
}

func (a *app) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import todos from a plain-text task list",
		Long: "Reads lines of the form \"- [ ] title\" or \"- [x] title\". A line holding only a date\n" +
			"(YYYY-MM-DD: or DD.MM.YYYY:) sets the due date of the tasks below it.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := commands.HandleImport(a.env, args[0])
			return err
		},
	}
}

func (a *app) exportCommand() *cobra.Command {
	var exportType, which string
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export records as json, txt, yaml or a sqlite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.HandleExport(a.env, args[0], exportType, which)
		},
	}
	cmd.Flags().StringVarP(&exportType, "type", "t", commands.ExportJSON, "Export file type (json, txt, yaml, sqlite)")
	cmd.Flags().StringVar(&which, "store", commands.StoreTodos, "Store to export (todos, notes, all)")
	return cmd
}

func (a *app) purgeCommand() *cobra.Command {
	var opts commands.PurgeOptions
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete todos in bulk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := commands.HandlePurge(a.env, opts)
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.Done, "done", false, "Only completed todos")
	cmd.Flags().BoolVar(&opts.Undone, "undone", false, "Only open todos")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Only todos due on this date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Skip confirmation")
	cmd.MarkFlagsMutuallyExclusive("done", "undone")
	return cmd
}

func (a *app) configCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.cfg.File != "" {
				fmt.Fprintf(out, "# Configuration from %s\n", a.cfg.File)
			}
			_, err = out.Write(data)
			return err
		},
	})
	return configCmd
}
