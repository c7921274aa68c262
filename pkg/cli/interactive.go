package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"supercli/pkg/keymaps"
	"supercli/pkg/prompt"
	"supercli/pkg/ui"
)

func (a *app) runInteractive(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotATerminal
	}

	out := cmd.OutOrStdout()
	theme := prompt.NewTheme(a.cfg.Styles)
	// a nil reader lets bubbletea open stdin itself and switch it to raw mode
	prompter := prompt.NewTerminal(nil, out, keymaps.BuildKeyMap(a.cfg.KeyMap), theme)
	progress := prompt.NewTerminalProgress(out, a.cfg.ProgressDelay, theme)
	styles := a.env.Styles

	todos := ui.NewTodoManager(a.env.Todos, prompter, progress, a.env.Clock, out, styles)
	notes := ui.NewNotesManager(a.env.Notes, prompter, progress, a.env.Clock, out, styles)
	return ui.NewApp(todos, notes, prompter, progress, out, styles).Run()
}
