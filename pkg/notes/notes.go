// Package notes defines the note record, its operations and the category grouping used for display.
package notes

import (
	"strings"

	"supercli/pkg/store"
)

// DefaultCategory is assigned to notes saved with a blank category
const DefaultCategory = "Uncategorized"

// Note is a titled free-form text entry of the notes store
type Note struct {
	ID        int64           `json:"id" yaml:"id"`
	Title     string          `json:"title" yaml:"title"`
	Content   string          `json:"content" yaml:"content"`
	Category  string          `json:"category" yaml:"category"`
	CreatedAt store.Timestamp `json:"createdAt" yaml:"createdAt"`
	UpdatedAt store.Timestamp `json:"updatedAt" yaml:"updatedAt"`
}

func (n Note) RecordID() int64 { return n.ID }

// Collection is the notes store's in-memory collection
type Collection = store.Collection[Note]

// Fields are the operator-editable parts of a note
type Fields struct {
	Title    string `validate:"min=3"`
	Content  string `validate:"min=1"`
	Category string
}

// Add appends a new note minted at the clock's current time
func Add(c Collection, f Fields, clock store.Clock) (Collection, Note) {
	now := clock.Now()
	n := Note{
		ID:        store.NextID(c, now),
		Title:     strings.TrimSpace(f.Title),
		Content:   f.Content,
		Category:  normalizeCategory(f.Category),
		CreatedAt: store.NewTimestamp(now),
		UpdatedAt: store.NewTimestamp(now),
	}
	return store.Add(c, n), n
}

// Update replaces the editable fields of the note with the given id and stamps its update time.
// id and creation time are preserved.
func Update(c Collection, id int64, f Fields, clock store.Clock) (Collection, error) {
	now := store.NewTimestamp(clock.Now())
	return c.Replace(id, func(n Note) Note {
		n.Title = strings.TrimSpace(f.Title)
		n.Content = f.Content
		n.Category = normalizeCategory(f.Category)
		n.UpdatedAt = now
		return n
	})
}

// FieldsOf returns the editable fields of n
func FieldsOf(n Note) Fields {
	return Fields{Title: n.Title, Content: n.Content, Category: n.Category}
}

// Group is the notes of one category, in collection order
type Group struct {
	Category string
	Notes    []Note
}

// GroupByCategory groups notes by category. Groups are ordered by the first
// appearance of their category in the collection.
func GroupByCategory(c Collection) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, n := range c {
		i, ok := index[n.Category]
		if !ok {
			i = len(groups)
			index[n.Category] = i
			groups = append(groups, Group{Category: n.Category})
		}
		groups[i].Notes = append(groups[i].Notes, n)
	}

	return groups
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	return category
}
