package todo

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supercli/pkg/store"
)

var start = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func mustDue(t *testing.T, s string) DueDate {
	t.Helper()
	d, err := ParseDueDate(s)
	require.NoError(t, err)
	return d
}

func TestAdd(t *testing.T) {
	clock := store.NewStubClock(start)
	c, created := Add(Collection{}, Fields{Title: "Buy milk", Priority: Medium}, clock)

	require.Len(t, c, 1)
	assert.Equal(t, created, c[0])
	assert.Equal(t, start.UnixMilli(), created.ID)
	assert.False(t, created.Completed)
	assert.False(t, created.DueDate.IsSet())
	assert.Equal(t, store.NewTimestamp(start), created.CreatedAt)

	c, second := Add(c, Fields{Title: "Buy eggs", Priority: Low}, clock)
	assert.Len(t, c, 2)
	assert.NotEqual(t, created.ID, second.ID)
}

func TestAddAndUpdate_TrimTitle(t *testing.T) {
	c, created := Add(Collection{}, Fields{Title: "  Buy milk \t", Priority: Medium}, store.NewStubClock(start))
	assert.Equal(t, "Buy milk", created.Title)

	c, err := Update(c, created.ID, Fields{Title: " Buy oat milk ", Priority: Medium})
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", c[0].Title)
}

func TestToggleCompleted_IsInvolution(t *testing.T) {
	clock := store.NewStubClock(start)
	c, a := Add(Collection{}, Fields{Title: "aaa", Priority: High}, clock)
	c, _ = Add(c, Fields{Title: "bbb", Priority: High}, clock)

	once, err := ToggleCompleted(c, a.ID)
	require.NoError(t, err)
	assert.True(t, once[0].Completed)
	assert.False(t, c[0].Completed)

	twice, err := ToggleCompleted(once, a.ID)
	require.NoError(t, err)
	assert.Equal(t, c, twice)
}

func TestToggleCompleted_UnknownID(t *testing.T) {
	c, _ := Add(Collection{}, Fields{Title: "aaa", Priority: High}, store.NewStubClock(start))
	out, err := ToggleCompleted(c, 12345)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, c, out)
}

func TestUpdate_PreservesIdentity(t *testing.T) {
	c, orig := Add(Collection{}, Fields{Title: "aaa", Priority: High, DueDate: mustDue(t, "2024-04-01")}, store.NewStubClock(start))
	c, _ = ToggleCompleted(c, orig.ID)

	out, err := Update(c, orig.ID, Fields{Title: "changed", Priority: Low})
	require.NoError(t, err)

	got := out[0]
	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.CreatedAt, got.CreatedAt)
	assert.True(t, got.Completed)
	assert.Equal(t, "changed", got.Title)
	assert.Equal(t, Low, got.Priority)
	assert.False(t, got.DueDate.IsSet())
	assert.Equal(t, Fields{Title: "changed", Priority: Low}, FieldsOf(got))

	_, err = Update(c, 1, Fields{Title: "nope", Priority: Low})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDueDate_JSON(t *testing.T) {
	clock := store.NewStubClock(start)
	c, _ := Add(Collection{}, Fields{Title: "dated", Priority: High, DueDate: mustDue(t, "2024-04-01")}, clock)
	c, _ = Add(c, Fields{Title: "undated", Priority: High}, clock)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"dueDate":"2024-04-01"`)
	assert.Contains(t, string(data), `"dueDate":null`)

	var back Collection
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c, back)

	var missing Todo
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "title": "x", "priority": "Low", "completed": false, "createdAt": "2024-01-01T00:00:00.000Z"}`), &missing))
	assert.False(t, missing.DueDate.IsSet())

	var bad Todo
	assert.Error(t, json.Unmarshal([]byte(`{"dueDate": 5}`), &bad))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, ValidateTitle("abc"))
	assert.EqualError(t, ValidateTitle("ab"), "Todo must be at least 3 characters long")
	assert.EqualError(t, ValidateTitle("  ab  "), "Todo must be at least 3 characters long")
	assert.EqualError(t, Validate(Fields{Title: " ab ", Priority: Medium}), "Todo must be at least 3 characters long")

	assert.NoError(t, ValidateDueDate(""))
	assert.NoError(t, ValidateDueDate("2024-02-29"))
	for _, bad := range []string{"2024-2-01", "01.02.2024", "2023-02-29", "tomorrow"} {
		assert.EqualError(t, ValidateDueDate(bad), "Please use YYYY-MM-DD format", bad)
	}

	assert.NoError(t, Validate(Fields{Title: "abc", Priority: Medium}))
	assert.EqualError(t, Validate(Fields{Title: "ab", Priority: Medium}), "Todo must be at least 3 characters long")
	assert.Error(t, Validate(Fields{Title: "abc", Priority: "Urgent"}))
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("high")
	require.NoError(t, err)
	assert.Equal(t, High, p)

	_, err = ParsePriority("urgent")
	assert.Error(t, err)
}

func TestSort(t *testing.T) {
	clock := store.NewStubClock(start)
	c, _ := Add(Collection{}, Fields{Title: "banana", Priority: Low, DueDate: mustDue(t, "2024-05-02")}, clock)
	clock.Advance(time.Minute)
	c, _ = Add(c, Fields{Title: "Apple", Priority: High}, clock)
	clock.Advance(time.Minute)
	c, _ = Add(c, Fields{Title: "cherry", Priority: Medium, DueDate: mustDue(t, "2024-05-01")}, clock)
	c, _ = ToggleCompleted(c, c[0].ID)

	titles := func(c Collection) []string {
		out := make([]string, len(c))
		for i, t := range c {
			out[i] = t.Title
		}
		return out
	}

	assert.Equal(t, []string{"Apple", "banana", "cherry"}, titles(Sort(c, SortByTitle, false)))
	assert.Equal(t, []string{"cherry", "banana", "Apple"}, titles(Sort(c, SortByDueDate, false)))
	assert.Equal(t, []string{"Apple", "cherry", "banana"}, titles(Sort(c, SortByPriority, false)))
	assert.Equal(t, []string{"Apple", "cherry", "banana"}, titles(Sort(c, SortByStatus, false)))
	assert.Equal(t, []string{"cherry", "Apple", "banana"}, titles(Sort(c, SortByCreated, true)))
	// the input is untouched
	assert.Equal(t, []string{"banana", "Apple", "cherry"}, titles(c))

	by, err := ParseSortBy("Due")
	require.NoError(t, err)
	assert.Equal(t, SortByDueDate, by)
	_, err = ParseSortBy("colour")
	assert.Error(t, err)
}
