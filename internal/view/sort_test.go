package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/idilsaglam/travelcheck/internal/model"
)

func ids(items []model.Item) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func sample() []model.Item {
	return []model.Item{
		{ID: 10, Name: "Socks", Quantity: 3, Packed: true},
		{ID: 20, Name: "hat", Quantity: 1},
		{ID: 30, Name: "Charger", Quantity: 1, Packed: true},
		{ID: 40, Name: "apple", Quantity: 2},
	}
}

func TestProjectOldestNewest(t *testing.T) {
	p := NewProjector(language.English)
	items := sample()

	oldest := p.Project(items, SortOldest)
	newest := p.Project(items, SortNewest)

	assert.Equal(t, []int64{10, 20, 30, 40}, ids(oldest))
	assert.Equal(t, []int64{40, 30, 20, 10}, ids(newest))
}

func TestProjectAZUsesCollation(t *testing.T) {
	p := NewProjector(language.English)
	got := p.Project(sample(), SortAZ)
	assert.Equal(t, []string{"apple", "Charger", "hat", "Socks"},
		[]string{got[0].Name, got[1].Name, got[2].Name, got[3].Name})
}

func TestProjectAZIsStable(t *testing.T) {
	p := NewProjector(language.English)
	items := []model.Item{
		{ID: 1, Name: "Towel"},
		{ID: 2, Name: "Book"},
		{ID: 3, Name: "Towel"},
		{ID: 4, Name: "Book"},
		{ID: 5, Name: "Towel"},
	}
	got := p.Project(items, SortAZ)
	assert.Equal(t, []int64{2, 4, 1, 3, 5}, ids(got))
}

func TestProjectPackedUnpackedFirstStable(t *testing.T) {
	p := NewProjector(language.English)
	got := p.Project(sample(), SortPacked)
	assert.Equal(t, []int64{20, 40, 10, 30}, ids(got))
}

func TestProjectDoesNotMutate(t *testing.T) {
	p := NewProjector(language.English)
	items := sample()
	before := sample()

	for _, k := range SortKeys() {
		out := p.Project(items, k)
		require.Len(t, out, len(items))
		out[0].Name = "mutated"
		assert.Equal(t, before, items, "key %s", k)
	}
}

func TestProjectNotCumulative(t *testing.T) {
	p := NewProjector(language.English)
	items := sample()
	_ = p.Project(items, SortAZ)
	_ = p.Project(items, SortNewest)
	assert.Equal(t, []int64{10, 20, 30, 40}, ids(p.Project(items, SortOldest)))
}

func TestProjectEmpty(t *testing.T) {
	p := NewProjector(language.English)
	got := p.Project(nil, SortAZ)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseSortKey(t *testing.T) {
	for _, k := range SortKeys() {
		got, err := ParseSortKey(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseSortKey(" A-Z ")
	require.NoError(t, err)
	assert.Equal(t, SortAZ, got)

	_, err = ParseSortKey("size")
	assert.True(t, errors.Is(err, ErrUnknownSortKey))
}

func TestSortKeyNext(t *testing.T) {
	assert.Equal(t, SortNewest, SortOldest.Next())
	assert.Equal(t, SortAZ, SortNewest.Next())
	assert.Equal(t, SortPacked, SortAZ.Next())
	assert.Equal(t, SortOldest, SortPacked.Next())
}
