package store

import (
	"strings"

	"github.com/Daniel-Blankson/todo/internal/model"
)

// Store owns the collection for the lifetime of the session. All
// mutations go through Add/Remove/Toggle/SetTitle; readers only ever
// see copies, so views cannot alias the backing slice.
//
// In-memory only: nothing is written anywhere, the collection dies
// with the process.
type Store struct {
	items  []model.Item
	nextID int64
}

// New returns an empty store.
func New() *Store {
	return &Store{nextID: 1}
}

// NewFromSeed starts a store pre-populated with the given items.
// Seed IDs are ignored and reassigned so uniqueness holds regardless
// of what a hand-edited seed file contains.
func NewFromSeed(seed []model.Item) *Store {
	s := New()
	for _, it := range seed {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			continue
		}
		s.items = append(s.items, model.Item{ID: s.nextID, Title: title, Done: it.Done})
		s.nextID++
	}
	return s
}

// Add appends a new pending item. Empty or whitespace-only titles are
// rejected as a silent no-op.
func (s *Store) Add(title string) (model.Item, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Item{}, false
	}
	it := model.Item{ID: s.nextID, Title: title}
	s.nextID++
	s.items = append(s.items, it)
	return it, true
}

// Remove deletes the item with the given ID. Unknown IDs are a silent
// no-op, not an error.
func (s *Store) Remove(id int64) bool {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle flips the done flag of the item with the given ID.
func (s *Store) Toggle(id int64) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Done = !s.items[i].Done
			return true
		}
	}
	return false
}

// SetTitle retitles an item. Empty titles are rejected, same rule as Add.
func (s *Store) SetTitle(id int64, title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Title = title
			return true
		}
	}
	return false
}

// Items returns a copy of the collection in insertion order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the collection size.
func (s *Store) Len() int { return len(s.items) }

// Summary recomputes the derived counts. O(n) every call; collections
// here are a handful of items, caching would buy nothing.
func (s *Store) Summary() model.Summary {
	sum := model.Summary{Total: len(s.items)}
	for _, it := range s.items {
		if it.Done {
			sum.Completed++
		}
	}
	return sum
}
