// Package ui holds the interactive controllers of the menu application: one manager per record
// store and the top-level app that greets the operator and dispatches to them.
package ui

import (
	"errors"
	"fmt"
	"io"

	"supercli/pkg/prompt"
	"supercli/pkg/store"
	"supercli/pkg/utils"
)

const menuLabel = "What would you like to do?"

// session bundles what every controller needs to talk to the operator
type session struct {
	prompter prompt.Prompter
	progress prompt.Progress
	out      io.Writer
	styles   Styles
}

func (s session) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s session) warn(msg string) {
	fmt.Fprintln(s.out, "\n"+s.styles.Warning.Render(msg))
}

// save runs fn under a spinner and reports the outcome
func (s session) save(start, success string, fn func() error) error {
	sp := s.progress.Start(start)
	if err := fn(); err != nil {
		sp.Error(err.Error())
		return err
	}
	sp.Success(success)
	return nil
}

// reportStale reports a record that vanished between listing and selection and lets the loop go on.
// Every other error ends the loop.
func (s session) reportStale(err error, what string) error {
	if errors.Is(err, store.ErrNotFound) {
		utils.Logger().WithError(err).Warn("Selected record no longer exists")
		s.warn(fmt.Sprintf("That %s no longer exists.", what))
		return nil
	}
	return err
}
