package ui

import (
	"fmt"
	"io"

	"supercli/pkg/prompt"
	"supercli/pkg/utils"
)

// Main menu entries, in display order
const (
	TodoManagerAction  = "Todo Manager"
	NotesManagerAction = "Notes Manager"
	ExitAction         = "Exit"
)

var mainActions = []string{TodoManagerAction, NotesManagerAction, ExitAction}

// Runner is a sub-menu the app can hand control to
type Runner interface {
	Run() error
}

// App greets the operator and dispatches between the managers
type App struct {
	session
	todos Runner
	notes Runner
}

// NewApp creates the top-level menu over the two managers
func NewApp(todos, notes Runner, p prompt.Prompter, progress prompt.Progress, out io.Writer, styles Styles) *App {
	return &App{
		session: session{prompter: p, progress: progress, out: out, styles: styles},
		todos:   todos,
		notes:   notes,
	}
}

// Run asks for the operator's name and loops over the main menu until Exit
func (a *App) Run() error {
	name, err := a.prompter.Input("What is your name?", prompt.InputOptions{Default: "User"})
	if err != nil {
		return err
	}
	utils.Logger().WithField("operator", name).Info("Session started")
	fmt.Fprintf(a.out, "\n%s\n\n", a.styles.Welcome.Render(fmt.Sprintf("Welcome, %s! 🎉", name)))

	for {
		choice, err := a.prompter.Select(menuLabel, mainActions, prompt.SelectOptions{})
		if err != nil {
			return err
		}

		switch mainActions[choice] {
		case TodoManagerAction:
			err = a.todos.Run()
		case NotesManagerAction:
			err = a.notes.Run()
		case ExitAction:
			sp := a.progress.Start("Cleaning up...")
			sp.Success("Thanks for trying out our CLI tool!")
			fmt.Fprintf(a.out, "\n%s\n\n", a.styles.TitleBar.Render("Goodbye! 👋"))
			utils.Log("Session ended")
			return nil
		}

		if err != nil {
			return err
		}
	}
}
