// Package session turns user events into store operations and produces
// the state the rendering side displays.
package session

import (
	"github.com/rs/zerolog"

	"github.com/idilsaglam/travelcheck/internal/logging"
	"github.com/idilsaglam/travelcheck/internal/model"
	"github.com/idilsaglam/travelcheck/internal/store"
	"github.com/idilsaglam/travelcheck/internal/view"
)

// ClearPrompt is the question asked before the list is emptied.
const ClearPrompt = "Are you sure you want to clear the list?"

// Confirmer answers a yes/no question from the user.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Sort  view.SortKey
	Items []model.Item // projected by Sort
	Stats view.Stats
	Empty bool
}

// Session is a single packing-list run. It owns the store.
type Session struct {
	store     *store.Store
	projector *view.Projector
	sort      view.SortKey
	log       zerolog.Logger
}

func New(st *store.Store, p *view.Projector, key view.SortKey) *Session {
	return &Session{
		store:     st,
		projector: p,
		sort:      key,
		log:       logging.GetLogger("session"),
	}
}

func (s *Session) Add(name string, quantity int) (model.Item, bool) {
	return s.store.Add(name, quantity)
}

func (s *Session) Delete(id int64) { s.store.Delete(id) }

func (s *Session) TogglePacked(id int64) { s.store.TogglePacked(id) }

// Clear empties the list once c agrees. An empty list is left alone and
// c is not asked. It reports whether the list was cleared.
func (s *Session) Clear(c Confirmer) bool {
	if s.store.Len() == 0 {
		return false
	}
	if c == nil || !c.Confirm(ClearPrompt) {
		s.log.Info().Int("count", s.store.Len()).Msg("clear declined")
		return false
	}
	s.store.Clear()
	return true
}

// SetSort changes the display order. The base order is not touched.
func (s *Session) SetSort(key view.SortKey) {
	s.sort = key
	s.log.Debug().Str("sort", string(key)).Msg("sort changed")
}

func (s *Session) Sort() view.SortKey { return s.sort }

func (s *Session) Len() int { return s.store.Len() }

// Items returns the current projection.
func (s *Session) Items() []model.Item {
	return s.projector.Project(s.store.Items(), s.sort)
}

// Summary returns the packed summary; false means the list is empty.
func (s *Session) Summary() (view.Stats, bool) {
	return view.Summarize(s.store.Items())
}

// ItemAt resolves a 1-based position in the current projection.
func (s *Session) ItemAt(pos int) (model.Item, bool) {
	items := s.Items()
	if pos < 1 || pos > len(items) {
		return model.Item{}, false
	}
	return items[pos-1], true
}

// Snapshot recomputes both projections from the base collection.
func (s *Session) Snapshot() Snapshot {
	base := s.store.Items()
	st, ok := view.Summarize(base)
	return Snapshot{
		Sort:  s.sort,
		Items: s.projector.Project(base, s.sort),
		Stats: st,
		Empty: !ok,
	}
}
