package repository

import "github.com/alexanderramin/stride/internal/domain"

// Snapshot is an immutable view of a store at one version. Accessors return
// clones, so callers may modify what they get without affecting the store.
type Snapshot[T Entity[T]] struct {
	items   []T
	version uint64
}

// Version increases by one with every published mutation.
func (s Snapshot[T]) Version() uint64 { return s.version }

func (s Snapshot[T]) Len() int { return len(s.items) }

// Items returns the records in insertion order.
func (s Snapshot[T]) Items() []T {
	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}
	return out
}

func (s Snapshot[T]) Get(id domain.ID) (T, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.items[i].Clone(), true
	}
	var zero T
	return zero, false
}

func (s Snapshot[T]) Contains(id domain.ID) bool {
	return s.indexOf(id) >= 0
}

// Last returns the most recently inserted record.
func (s Snapshot[T]) Last() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1].Clone(), true
}

func (s Snapshot[T]) indexOf(id domain.ID) int {
	for i, item := range s.items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}
