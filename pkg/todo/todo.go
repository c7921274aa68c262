// Package todo defines the todo record and the operations the todo manager applies to a collection of them.
package todo

import (
	"encoding/json"
	"fmt"
	"strings"

	"supercli/pkg/store"
)

// DateLayout is the accepted due date format (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// Priority of a todo
type Priority string

const (
	High   Priority = "High"
	Medium Priority = "Medium"
	Low    Priority = "Low"
)

// Priorities lists every priority in the order the prompt offers them
var Priorities = []Priority{High, Medium, Low}

// ParsePriority returns the priority named s, ignoring case
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q: use High, Medium or Low", s)
}

// DueDate is an optional YYYY-MM-DD date. The zero value means no due date.
type DueDate struct {
	value string
	set   bool
}

// NoDueDate returns the absent due date
func NoDueDate() DueDate {
	return DueDate{}
}

// ParseDueDate validates s and returns it as a due date. An empty string yields NoDueDate.
func ParseDueDate(s string) (DueDate, error) {
	if s == "" {
		return NoDueDate(), nil
	}
	if err := ValidateDueDate(s); err != nil {
		return DueDate{}, err
	}
	return DueDate{value: s, set: true}, nil
}

// Get returns the date and whether one is set
func (d DueDate) Get() (string, bool) {
	return d.value, d.set
}

// IsSet reports whether the todo has a due date
func (d DueDate) IsSet() bool {
	return d.set
}

func (d DueDate) String() string {
	return d.value
}

// MarshalJSON writes the date string, or null when absent
func (d DueDate) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	return json.Marshal(d.value)
}

// MarshalYAML writes the date string, or null when absent
func (d DueDate) MarshalYAML() (interface{}, error) {
	if !d.set {
		return nil, nil
	}
	return d.value, nil
}

// UnmarshalJSON reads a date string or null. Stored dates are taken as written.
func (d *DueDate) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("dueDate must be a string or null: %w", err)
	}
	if s == nil {
		*d = NoDueDate()
		return nil
	}
	*d = DueDate{value: *s, set: true}
	return nil
}

// Todo is a single task of the todo store
type Todo struct {
	ID        int64           `json:"id" yaml:"id"`
	Title     string          `json:"title" yaml:"title"`
	Priority  Priority        `json:"priority" yaml:"priority"`
	DueDate   DueDate         `json:"dueDate" yaml:"dueDate"`
	Completed bool            `json:"completed" yaml:"completed"`
	CreatedAt store.Timestamp `json:"createdAt" yaml:"createdAt"`
}

func (t Todo) RecordID() int64 { return t.ID }

// Collection is the todo store's in-memory collection
type Collection = store.Collection[Todo]

// Fields are the operator-editable parts of a todo
type Fields struct {
	Title    string   `validate:"min=3"`
	Priority Priority `validate:"oneof=High Medium Low"`
	DueDate  DueDate  `validate:"-"`
}

// Add appends a new, uncompleted todo minted at the clock's current time.
// Surrounding whitespace is trimmed from the title.
func Add(c Collection, f Fields, clock store.Clock) (Collection, Todo) {
	now := clock.Now()
	t := Todo{
		ID:        store.NextID(c, now),
		Title:     strings.TrimSpace(f.Title),
		Priority:  f.Priority,
		DueDate:   f.DueDate,
		Completed: false,
		CreatedAt: store.NewTimestamp(now),
	}
	return store.Add(c, t), t
}

// Update replaces the editable fields of the todo with the given id.
// id, creation time and completion state are preserved.
func Update(c Collection, id int64, f Fields) (Collection, error) {
	return c.Replace(id, func(t Todo) Todo {
		t.Title = strings.TrimSpace(f.Title)
		t.Priority = f.Priority
		t.DueDate = f.DueDate
		return t
	})
}

// ToggleCompleted flips the completion state of the todo with the given id.
// An unknown id leaves the collection unchanged and returns store.ErrNotFound.
func ToggleCompleted(c Collection, id int64) (Collection, error) {
	return c.Replace(id, func(t Todo) Todo {
		t.Completed = !t.Completed
		return t
	})
}

// FieldsOf returns the editable fields of t
func FieldsOf(t Todo) Fields {
	return Fields{Title: t.Title, Priority: t.Priority, DueDate: t.DueDate}
}
