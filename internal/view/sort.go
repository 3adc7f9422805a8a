// Package view derives read-only projections of the packing list:
// a sorted copy for display and the packed summary.
package view

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/idilsaglam/travelcheck/internal/model"
)

// SortKey selects the display order.
type SortKey string

const (
	SortOldest SortKey = "oldest"
	SortNewest SortKey = "newest"
	SortAZ     SortKey = "a-z"
	SortPacked SortKey = "packed"
)

// ErrUnknownSortKey is returned by ParseSortKey.
var ErrUnknownSortKey = errors.New("unknown sort key")

var sortKeys = []SortKey{SortOldest, SortNewest, SortAZ, SortPacked}

// SortKeys lists the supported keys in menu order.
func SortKeys() []SortKey { return slices.Clone(sortKeys) }

// ParseSortKey accepts a key name, case-insensitively.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(sortKeys, k) {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownSortKey, s, strings.Join(keyNames(), ", "))
}

// Next returns the key after k in menu order, wrapping around.
func (k SortKey) Next() SortKey {
	i := slices.Index(sortKeys, k)
	return sortKeys[(i+1)%len(sortKeys)]
}

// Label is the menu text for k.
func (k SortKey) Label() string {
	switch k {
	case SortNewest:
		return "Sort by newest"
	case SortAZ:
		return "Sort by a-z"
	case SortPacked:
		return "Sort by packed status"
	default:
		return "Sort by oldest"
	}
}

func keyNames() []string {
	out := make([]string, len(sortKeys))
	for i, k := range sortKeys {
		out[i] = string(k)
	}
	return out
}

// Projector sorts items for display. Names are compared with a collator
// for the configured language. A Projector is not safe for concurrent use.
type Projector struct {
	collator *collate.Collator
}

func NewProjector(tag language.Tag) *Projector {
	return &Projector{collator: collate.New(tag)}
}

// Project returns a sorted copy of items. The input slice is left untouched
// and equal elements keep their base order.
func (p *Projector) Project(items []model.Item, key SortKey) []model.Item {
	out := slices.Clone(items)
	if out == nil {
		out = []model.Item{}
	}
	switch key {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b model.Item) int { return cmp.Compare(b.ID, a.ID) })
	case SortAZ:
		slices.SortStableFunc(out, func(a, b model.Item) int {
			return p.collator.CompareString(a.Name, b.Name)
		})
	case SortPacked:
		slices.SortStableFunc(out, func(a, b model.Item) int {
			return cmp.Compare(packedRank(a), packedRank(b))
		})
	default:
		slices.SortStableFunc(out, func(a, b model.Item) int { return cmp.Compare(a.ID, b.ID) })
	}
	return out
}

func packedRank(it model.Item) int {
	if it.Packed {
		return 1
	}
	return 0
}
