package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supercli/pkg/store"
)

type testCLI struct {
	configPath string
	dataDir    string
	clock      *store.StubClock
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"progress_delay": "0s"}`), 0644))
	return &testCLI{
		configPath: configPath,
		dataDir:    filepath.Join(dir, "data"),
		clock:      store.NewStubClock(time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)),
	}
}

func (c *testCLI) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(c.clock)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", c.configPath, "--data-dir", c.dataDir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTodoAddAndList(t *testing.T) {
	c := newTestCLI(t)

	_, err := c.run(t, "", "todo", "add", "Buy milk", "--due", "2024-02-10")
	require.NoError(t, err)
	c.clock.Advance(time.Second)
	_, err = c.run(t, "", "todo", "add", "Call mom", "-p", "High")
	require.NoError(t, err)

	out, err := c.run(t, "", "todo", "list", "--sort", "priority")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Call mom"), strings.Index(out, "Buy milk"))
	assert.Contains(t, out, "(Due: 2024-02-10)")

	_, err = os.Stat(filepath.Join(c.dataDir, "todos.json"))
	assert.NoError(t, err)
}

func TestTodoAdd_ValidationError(t *testing.T) {
	c := newTestCLI(t)
	_, err := c.run(t, "", "todo", "add", "no")
	assert.EqualError(t, err, "Todo must be at least 3 characters long")
}

func TestTodoList_UnknownSort(t *testing.T) {
	c := newTestCLI(t)
	_, err := c.run(t, "", "todo", "list", "--sort", "color")
	assert.ErrorContains(t, err, "unknown sort field")
}

func TestPurgeAndImport(t *testing.T) {
	c := newTestCLI(t)
	file := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(t, os.WriteFile(file, []byte("2024-02-05:\n- [x] Done task\n- [ ] Open task\n"), 0644))

	out, err := c.run(t, "", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully imported 2 task(s)")

	out, err = c.run(t, "y\n", "purge", "--done")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully deleted 1 todo(s)")

	out, err = c.run(t, "", "todo", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Open task")
	assert.NotContains(t, out, "Done task")
}

func TestPurge_DoneAndUndoneExclusive(t *testing.T) {
	c := newTestCLI(t)
	_, err := c.run(t, "", "purge", "--done", "--undone", "--yes")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	c := newTestCLI(t)
	_, err := c.run(t, "", "todo", "add", "Buy milk")
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "todos.yaml")
	out, err := c.run(t, "", "export", target, "--type", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully exported 1 todo(s)")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Buy milk")
}

func TestNotesList_Empty(t *testing.T) {
	c := newTestCLI(t)
	out, err := c.run(t, "", "notes", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No notes yet!")
}

func TestConfigShow(t *testing.T) {
	c := newTestCLI(t)
	out, err := c.run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# Configuration from "+c.configPath)
	assert.Contains(t, out, "data_dir: "+c.dataDir)
	assert.Contains(t, out, "progress_delay: 0s")
}

func TestMissingExplicitConfig(t *testing.T) {
	c := newTestCLI(t)
	c.configPath = filepath.Join(t.TempDir(), "missing.json")
	_, err := c.run(t, "", "todo", "list")
	assert.ErrorContains(t, err, "reading config")
}
