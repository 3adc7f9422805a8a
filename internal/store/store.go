// Package store owns the packing list. It is the only code allowed to
// mutate items; everything else reads copies.
package store

import (
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/travelcheck/internal/logging"
	"github.com/idilsaglam/travelcheck/internal/model"
)

// Store holds the items in insertion (base) order.
// Not safe for concurrent use; the session drives it from one event loop.
type Store struct {
	items  []model.Item
	now    func() time.Time
	lastID int64
	log    zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source used to derive ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		items: []model.Item{},
		now:   time.Now,
		log:   logging.GetLogger("store"),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// nextID derives an id from the clock, bumped past the last one handed out.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Add appends a new unpacked item. The name is stored as given. It reports
// false and changes nothing when the name is empty or the quantity is out
// of range.
func (s *Store) Add(name string, quantity int) (model.Item, bool) {
	if name == "" || !model.ValidQuantity(quantity) {
		s.log.Debug().Str("name", name).Int("quantity", quantity).Msg("add rejected")
		return model.Item{}, false
	}
	it := model.Item{
		ID:       s.nextID(),
		Name:     name,
		Quantity: quantity,
	}
	s.items = append(s.items, it)
	s.log.Debug().Int64("id", it.ID).Str("name", it.Name).Int("quantity", it.Quantity).Msg("item added")
	return it, true
}

// Delete removes the item with the given id, if present.
func (s *Store) Delete(id int64) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.log.Debug().Int64("id", id).Msg("item deleted")
}

// TogglePacked flips the packed flag of the item with the given id, if present.
func (s *Store) TogglePacked(id int64) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.items[i].Packed = !s.items[i].Packed
	s.log.Debug().Int64("id", id).Bool("packed", s.items[i].Packed).Msg("item toggled")
}

// Clear drops every item. Callers gate this behind a confirmation.
func (s *Store) Clear() {
	if len(s.items) == 0 {
		return
	}
	n := len(s.items)
	s.items = []model.Item{}
	s.log.Debug().Int("count", n).Msg("list cleared")
}

// Items returns a copy of the collection in base order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }

// Get returns a copy of the item with the given id.
func (s *Store) Get(id int64) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

func (s *Store) index(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
