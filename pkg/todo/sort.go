package todo

import (
	"fmt"
	"sort"
	"strings"
)

// SortBy names the field a listing is ordered by
type SortBy string

const (
	SortByCreated  SortBy = "created"
	SortByTitle    SortBy = "title"
	SortByDueDate  SortBy = "due"
	SortByPriority SortBy = "priority"
	SortByStatus   SortBy = "status"
)

// SortFields lists the accepted sort keys
var SortFields = []SortBy{SortByCreated, SortByTitle, SortByDueDate, SortByPriority, SortByStatus}

// ParseSortBy accepts one of SortFields, case-insensitively
func ParseSortBy(s string) (SortBy, error) {
	for _, f := range SortFields {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown sort field %q", s)
}

var priorityRank = map[Priority]int{High: 0, Medium: 1, Low: 2}

// Sort returns a sorted copy of c. Equal elements keep their collection order.
// Todos without a due date sort after every dated one.
func Sort(c Collection, by SortBy, desc bool) Collection {
	sorted := make(Collection, len(c))
	copy(sorted, c)

	less := func(a, b Todo) bool {
		switch by {
		case SortByTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case SortByDueDate:
			ad, aok := a.DueDate.Get()
			bd, bok := b.DueDate.Get()
			if aok != bok {
				return aok
			}
			return ad < bd
		case SortByPriority:
			return priorityRank[a.Priority] < priorityRank[b.Priority]
		case SortByStatus:
			return !a.Completed && b.Completed // Undone first
		default:
			return a.CreatedAt.Before(b.CreatedAt.Time)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// Filter returns the todos for which keep reports true, in collection order
func Filter(c Collection, keep func(Todo) bool) Collection {
	out := Collection{}
	for _, t := range c {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
