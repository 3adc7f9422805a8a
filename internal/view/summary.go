package view

import (
	"math"

	"github.com/idilsaglam/travelcheck/internal/model"
)

// Stats is the packed summary of a non-empty list.
type Stats struct {
	Total      int `json:"total" yaml:"total"`
	Packed     int `json:"packed" yaml:"packed"`
	Percentage int `json:"percentage" yaml:"percentage"`
}

// Complete reports whether everything is packed.
func (s Stats) Complete() bool { return s.Percentage == 100 }

// Summarize counts items and packed items. The bool is false for an empty
// list, in which case no percentage exists.
func Summarize(items []model.Item) (Stats, bool) {
	if len(items) == 0 {
		return Stats{}, false
	}
	st := Stats{Total: len(items)}
	for _, it := range items {
		if it.Packed {
			st.Packed++
		}
	}
	st.Percentage = int(math.Round(float64(st.Packed) / float64(st.Total) * 100))
	return st, true
}
