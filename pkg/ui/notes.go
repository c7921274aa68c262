package ui

import (
	"io"

	"supercli/pkg/notes"
	"supercli/pkg/prompt"
	"supercli/pkg/store"
	"supercli/pkg/utils"
)

// Notes menu entries, in display order
const (
	ViewAllNotes    = "View All Notes"
	ViewNoteContent = "View Note Content"
	AddNote         = "Add Note"
	EditNote        = "Edit Note"
	DeleteNote      = "Delete Note"
)

var noteActions = []string{ViewAllNotes, ViewNoteContent, AddNote, EditNote, DeleteNote, BackToMain}

// NotesManager is the interactive controller for the notes store
type NotesManager struct {
	session
	store *store.Gateway[notes.Note]
	clock store.Clock
}

// NewNotesManager creates a notes controller over gw
func NewNotesManager(gw *store.Gateway[notes.Note], p prompt.Prompter, progress prompt.Progress, clock store.Clock, out io.Writer, styles Styles) *NotesManager {
	return &NotesManager{
		session: session{prompter: p, progress: progress, out: out, styles: styles},
		store:   gw,
		clock:   clock,
	}
}

// Run loops over the notes menu until the operator goes back to the main menu
func (m *NotesManager) Run() error {
	if err := m.store.EnsureInitialized(); err != nil {
		return err
	}

	for {
		choice, err := m.prompter.Select(menuLabel, noteActions, prompt.SelectOptions{})
		if err != nil {
			return err
		}

		action := noteActions[choice]
		utils.Logger().WithField("action", action).Debug("Notes menu")

		switch action {
		case ViewAllNotes:
			err = m.viewAll()
		case ViewNoteContent:
			err = m.viewContent()
		case AddNote:
			err = m.add()
		case EditNote:
			err = m.edit()
		case DeleteNote:
			err = m.delete()
		case BackToMain:
			return nil
		}

		if err := m.reportStale(err, "note"); err != nil {
			return err
		}
	}
}

func (m *NotesManager) viewAll() error {
	c, err := m.store.LoadAll()
	if err != nil {
		return err
	}
	if len(c) == 0 {
		m.warn("No notes yet! Add some notes to get started.")
		return nil
	}
	m.print(RenderNotes(c, m.styles) + "\n")
	return nil
}

func (m *NotesManager) viewContent() error {
	c, err := m.store.LoadAll()
	if err != nil {
		return err
	}
	if len(c) == 0 {
		m.warn("No notes to view!")
		return nil
	}

	idx, err := m.prompter.Select("Select a note to view:", noteChoices(c), prompt.SelectOptions{})
	if err != nil {
		return err
	}
	id := c[idx].ID

	c, err = m.store.LoadAll()
	if err != nil {
		return err
	}
	n, ok := c.FindByID(id)
	if !ok {
		return store.ErrNotFound
	}
	m.print(RenderNote(n, m.styles))
	return nil
}

func (m *NotesManager) add() error {
	title, err := m.prompter.Input("Enter note title:", prompt.InputOptions{Validate: notes.ValidateTitle})
	if err != nil {
		return err
	}
	content, err := m.prompter.Editor("Enter your note:", prompt.InputOptions{Validate: notes.ValidateContent})
	if err != nil {
		return err
	}
	category, err := m.prompter.Input("Enter category (optional):", prompt.InputOptions{Placeholder: notes.DefaultCategory})
	if err != nil {
		return err
	}

	c, err := m.store.LoadAll()
	if err != nil {
		return err
	}
	c, created := notes.Add(c, notes.Fields{Title: title, Content: content, Category: category}, m.clock)
	utils.Logger().WithField("id", created.ID).Info("Adding note")

	return m.save("Saving note...", "Note saved successfully!", func() error {
		return m.store.SaveAll(c)
	})
}

func (m *NotesManager) edit() error {
	c, err := m.store.LoadAll()
	if err != nil {
		return err
	}
	if len(c) == 0 {
		m.warn("No notes to edit!")
		return nil
	}

	idx, err := m.prompter.Select("Select a note to edit:", noteChoices(c), prompt.SelectOptions{})
	if err != nil {
		return err
	}
	current := c[idx]

	title, err := m.prompter.Input("Edit title:", prompt.InputOptions{
		Default:  current.Title,
		Validate: notes.ValidateTitle,
	})
	if err != nil {
		return err
	}
	content, err := m.prompter.Editor("Edit content:", prompt.InputOptions{
		Default:  current.Content,
		Validate: notes.ValidateContent,
	})
	if err != nil {
		return err
	}
	category, err := m.prompter.Input("Edit category:", prompt.InputOptions{Default: current.Category})
	if err != nil {
		return err
	}

	c, err = m.store.LoadAll()
	if err != nil {
		return err
	}
	c, err = notes.Update(c, current.ID, notes.Fields{Title: title, Content: content, Category: category}, m.clock)
	if err != nil {
		return err
	}

	return m.save("Updating note...", "Note updated successfully!", func() error {
		return m.store.SaveAll(c)
	})
}

func (m *NotesManager) delete() error {
	c, err := m.store.LoadAll()
	if err != nil {
		return err
	}
	if len(c) == 0 {
		m.warn("No notes to delete!")
		return nil
	}

	picked, err := m.prompter.Checkbox("Select notes to delete:", noteChoices(c))
	if err != nil {
		return err
	}
	if len(picked) == 0 {
		m.warn("No notes selected for deletion.")
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

	return m.save("Deleting notes...", "Notes deleted successfully!", func() error {
		return m.store.SaveAll(c)
	})
}

func noteChoices(c notes.Collection) []string {
	choices := make([]string, len(c))
	for i, n := range c {
		choices[i] = noteChoice(n)
	}
	return choices
}
