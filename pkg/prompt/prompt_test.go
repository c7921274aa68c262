package prompt

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supercli/pkg/config"
	"supercli/pkg/keymaps"
)

func testTheme() Theme {
	return NewTheme(config.DefaultStyles())
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectModel_MovesAndWraps(t *testing.T) {
	m := newSelectModel("Pick", []string{"a", "b", "c"}, 0, keymaps.DefaultKeyMap(), testTheme())

	next, _ := m.Update(keyPress(tea.KeyUp))
	m = next.(selectModel)
	assert.Equal(t, 2, m.cursor)

	next, _ = m.Update(keyPress(tea.KeyDown))
	m = next.(selectModel)
	assert.Equal(t, 0, m.cursor)

	next, _ = m.Update(runes("j"))
	m = next.(selectModel)
	assert.Equal(t, 1, m.cursor)

	next, cmd := m.Update(keyPress(tea.KeyEnter))
	m = next.(selectModel)
	assert.True(t, m.chosen)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "b")
}

func TestSelectModel_StartsOnDefault(t *testing.T) {
	m := newSelectModel("Priority", []string{"High", "Medium", "Low"}, 2, keymaps.DefaultKeyMap(), testTheme())
	assert.Equal(t, 2, m.cursor)
	assert.Contains(t, m.View(), "❯ Low")

	next, _ := m.Update(keyPress(tea.KeyEnter))
	m = next.(selectModel)
	assert.True(t, m.chosen)
	assert.Equal(t, 2, m.cursor)

	// out of range falls back to the first entry
	assert.Equal(t, 0, newSelectModel("Pick", []string{"a", "b"}, 5, keymaps.DefaultKeyMap(), testTheme()).cursor)
	assert.Equal(t, 0, newSelectModel("Pick", []string{"a", "b"}, -1, keymaps.DefaultKeyMap(), testTheme()).cursor)
}

func TestSelectModel_Abort(t *testing.T) {
	m := newSelectModel("Pick", []string{"a"}, 0, keymaps.DefaultKeyMap(), testTheme())
	next, _ := m.Update(keyPress(tea.KeyCtrlC))
	assert.True(t, next.(selectModel).aborted)
}

func TestInputModel_DefaultOnEmpty(t *testing.T) {
	m := newInputModel("Name", InputOptions{Default: "User"}, keymaps.DefaultKeyMap(), testTheme())
	next, _ := m.Update(keyPress(tea.KeyEnter))
	m = next.(inputModel)
	assert.True(t, m.done)
	assert.Equal(t, "User", m.value)
}

func TestInputModel_ValidationKeepsPromptOpen(t *testing.T) {
	validate := func(s string) error {
		if len(s) < 3 {
			return errors.New("too short")
		}
		return nil
	}
	m := newInputModel("Title", InputOptions{Validate: validate}, keymaps.DefaultKeyMap(), testTheme())

	next, _ := m.Update(runes("ab"))
	m = next.(inputModel)
	next, cmd := m.Update(keyPress(tea.KeyEnter))
	m = next.(inputModel)
	assert.False(t, m.done)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "too short")

	next, _ = m.Update(runes("c"))
	m = next.(inputModel)
	assert.Empty(t, m.err)
	next, _ = m.Update(keyPress(tea.KeyEnter))
	m = next.(inputModel)
	assert.True(t, m.done)
	assert.Equal(t, "abc", m.value)
}

func TestCheckboxModel_ToggleAndToggleAll(t *testing.T) {
	m := newCheckboxModel("Delete", []string{"a", "b", "c"}, keymaps.DefaultKeyMap(), testTheme())

	next, _ := m.Update(keyPress(tea.KeyDown))
	m = next.(checkboxModel)
	next, _ = m.Update(keyPress(tea.KeySpace))
	m = next.(checkboxModel)
	assert.Equal(t, []int{1}, m.selection())

	next, _ = m.Update(runes("a"))
	m = next.(checkboxModel)
	assert.Equal(t, []int{0, 1, 2}, m.selection())

	next, _ = m.Update(runes("a"))
	m = next.(checkboxModel)
	assert.Empty(t, m.selection())
}

func TestCheckboxModel_EmptySubmit(t *testing.T) {
	m := newCheckboxModel("Delete", []string{"a"}, keymaps.DefaultKeyMap(), testTheme())
	next, _ := m.Update(keyPress(tea.KeyEnter))
	m = next.(checkboxModel)
	assert.True(t, m.done)
	require.NotNil(t, m.selection())
	assert.Empty(t, m.selection())
}

func TestEditorModel_PrefillAndSave(t *testing.T) {
	m := newEditorModel("Content", InputOptions{Default: "old text"}, keymaps.DefaultKeyMap(), testTheme())
	next, _ := m.Update(keyPress(tea.KeyCtrlS))
	m = next.(editorModel)
	assert.True(t, m.done)
	assert.Equal(t, "old text", m.value)
}

func TestEditorModel_ValidationKeepsEditorOpen(t *testing.T) {
	validate := func(s string) error {
		if s == "" {
			return errors.New("Note cannot be empty")
		}
		return nil
	}
	m := newEditorModel("Content", InputOptions{Validate: validate}, keymaps.DefaultKeyMap(), testTheme())
	next, _ := m.Update(keyPress(tea.KeyCtrlS))
	m = next.(editorModel)
	assert.False(t, m.done)
	assert.Contains(t, m.View(), "Note cannot be empty")
}

func TestSpinnerModel_Success(t *testing.T) {
	m := newSpinnerModel("Saving...", testTheme())
	next, cmd := m.Update(doneMsg{text: "Saved"})
	m = next.(spinnerModel)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "✔ Saved")
}

func TestSpinnerModel_Failure(t *testing.T) {
	m := newSpinnerModel("Saving...", testTheme())
	next, _ := m.Update(doneMsg{text: "Could not save", failed: true})
	assert.Contains(t, next.(spinnerModel).View(), "✖ Could not save")
}

func TestTerminal_RejectsEmptyChoices(t *testing.T) {
	term := NewTerminal(nil, nil, keymaps.DefaultKeyMap(), testTheme())
	_, err := term.Select("Pick", nil, SelectOptions{})
	assert.ErrorIs(t, err, ErrNoChoices)
	_, err = term.Checkbox("Pick", []string{})
	assert.ErrorIs(t, err, ErrNoChoices)
}
