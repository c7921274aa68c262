// Package cli wires the cobra command tree: the interactive menu on the root command and the
// non-interactive subcommands underneath it.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"supercli/pkg/commands"
	"supercli/pkg/config"
	"supercli/pkg/notes"
	"supercli/pkg/store"
	"supercli/pkg/todo"
	"supercli/pkg/ui"
	"supercli/pkg/utils"
)

// ErrNotATerminal is returned when the interactive menu is started without a terminal on stdin
var ErrNotATerminal = errors.New("the interactive menu needs a terminal; use a subcommand instead (see --help)")

// Args holds the global flags shared by every command
type Args struct {
	ConfigPath string
	DataDir    string
	Verbose    bool
}

// app is the state built once the global flags are parsed
type app struct {
	args  Args
	cfg   config.Config
	env   commands.Env
	clock store.Clock
}

// setup loads the configuration, applies flag overrides, resolves the data directory
// and starts logging
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.args.ConfigPath)
	if err != nil {
		return err
	}
	if a.args.DataDir != "" {
		cfg.DataDir = a.args.DataDir
	}
	if a.args.Verbose {
		cfg.Verbose = true
	}
	if err := cfg.ResolveDataDir(); err != nil {
		return err
	}
	if err := utils.InitLogger(cfg.Verbose, cfg.LogFile); err != nil {
		return err
	}
	utils.Logger().WithField("command", cmd.CommandPath()).WithField("data_dir", cfg.DataDir).Debug("Starting")

	a.cfg = cfg
	a.env = commands.Env{
		Todos:  store.NewGateway[todo.Todo](cfg.TodosPath()),
		Notes:  store.NewGateway[notes.Note](cfg.NotesPath()),
		Clock:  a.clock,
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Styles: ui.NewStyles(cfg.Styles),
	}
	return nil
}

// NewRootCommand builds the full command tree. clock mints ids and timestamps.
func NewRootCommand(clock store.Clock) *cobra.Command {
	a := &app{clock: clock}

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Interactive todo and notes manager",
		Long:          "supercli manages a todo list and categorized notes, stored as JSON files in the data directory.\nRun it without a subcommand for the interactive menu.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.args.ConfigPath, "config", "", "Path to configuration file")
	flags.StringVar(&a.args.DataDir, "data-dir", "", "Directory holding todos.json and notes.json")
	flags.BoolVarP(&a.args.Verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		a.todoCommand(),
		a.notesCommand(),
		a.importCommand(),
		a.exportCommand(),
		a.purgeCommand(),
		a.configCommand(),
	)
	return root
}

// Execute runs the command tree against the process arguments
func Execute() error {
	return NewRootCommand(store.RealClock{}).Execute()
}
