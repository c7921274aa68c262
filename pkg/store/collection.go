package store

import "time"

// Record is an entry of a collection, identified by its creation-time id
type Record interface {
	RecordID() int64
}

// Collection is the ordered set of records of one store. Insertion order is display order.
type Collection[R Record] []R

// IDSet is a set of record ids, as produced by a multi-select prompt
type IDSet map[int64]struct{}

// NewIDSet builds a set from the given ids
func NewIDSet(ids ...int64) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Has reports whether id is in the set
func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Add appends a record to the collection
func Add[R Record](c Collection[R], r R) Collection[R] {
	return append(c, r)
}

// NextID mints an id from now in milliseconds. The candidate is bumped past any id
// already present so two records created within the same millisecond cannot collide.
func NextID[R Record](c Collection[R], now time.Time) int64 {
	id := now.UnixMilli()
	taken := make(IDSet, len(c))
	for _, r := range c {
		taken[r.RecordID()] = struct{}{}
	}
	for taken.Has(id) {
		id++
	}
	return id
}

// FindByID returns the record with the given id
func (c Collection[R]) FindByID(id int64) (R, bool) {
	if i := c.IndexOf(id); i >= 0 {
		return c[i], true
	}
	var zero R
	return zero, false
}

// IndexOf returns the position of the record with the given id, or -1
func (c Collection[R]) IndexOf(id int64) int {
	for i, r := range c {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// IDs returns the ids of every record in collection order
func (c Collection[R]) IDs() []int64 {
	ids := make([]int64, len(c))
	for i, r := range c {
		ids[i] = r.RecordID()
	}
	return ids
}

// RemoveByIDs returns a new collection without the records whose id is in ids.
// Survivors keep their relative order; the receiver is not modified.
func (c Collection[R]) RemoveByIDs(ids IDSet) Collection[R] {
	out := make(Collection[R], 0, len(c))
	for _, r := range c {
		if !ids.Has(r.RecordID()) {
			out = append(out, r)
		}
	}
	return out
}

// Replace returns a copy of the collection where the record with the given id
// has been passed through fn. It returns ErrNotFound when no record matches.
func (c Collection[R]) Replace(id int64, fn func(R) R) (Collection[R], error) {
	i := c.IndexOf(id)
	if i < 0 {
		return c, ErrNotFound
	}
	out := make(Collection[R], len(c))
	copy(out, c)
	out[i] = fn(out[i])
	return out, nil
}
