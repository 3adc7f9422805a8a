package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/idilsaglam/travelcheck/internal/session"
	"github.com/idilsaglam/travelcheck/internal/store"
	"github.com/idilsaglam/travelcheck/internal/view"
)

var (
	always = session.ConfirmFunc(func(string) bool { return true })
	never  = session.ConfirmFunc(func(string) bool { return false })
)

func newSession() *session.Session {
	return session.New(store.New(), view.NewProjector(language.English), view.SortOldest)
}

func TestParse(t *testing.T) {
	src := `
# packing for the beach
add 3 Socks
add Sun hat
ADD 2 3D glasses
pack 1
rm 2
sort A-Z
clear
`
	cmds, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cmds, 7)

	assert.Equal(t, Command{Line: 3, Op: OpAdd, Name: "Socks", Quantity: 3}, cmds[0])
	assert.Equal(t, Command{Line: 4, Op: OpAdd, Name: "Sun hat", Quantity: 1}, cmds[1])
	assert.Equal(t, Command{Line: 5, Op: OpAdd, Name: "3D glasses", Quantity: 2}, cmds[2])
	assert.Equal(t, Command{Line: 6, Op: OpToggle, Pos: 1}, cmds[3])
	assert.Equal(t, Command{Line: 7, Op: OpDelete, Pos: 2}, cmds[4])
	assert.Equal(t, Command{Line: 8, Op: OpSort, Sort: view.SortAZ}, cmds[5])
	assert.Equal(t, Command{Line: 9, Op: OpClear}, cmds[6])
}

func TestParseSingleNumberIsAName(t *testing.T) {
	cmds, err := Parse(strings.NewReader("add 7"))
	require.NoError(t, err)
	assert.Equal(t, "7", cmds[0].Name)
	assert.Equal(t, 1, cmds[0].Quantity)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		line int
		msg  string
	}{
		{"add", 1, "usage: add"},
		{"add 1 a\nfly 2", 2, "unknown command"},
		{"toggle", 1, "usage: toggle"},
		{"delete x", 1, "not a number"},
		{"sort size", 1, "bad sort key"},
		{"\n\nclear now", 3, "usage: clear"},
	}
	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.src))
		require.Error(t, err, tt.src)
		var pe *ParseError
		require.True(t, errors.As(err, &pe), tt.src)
		assert.Equal(t, tt.line, pe.Line, tt.src)
		assert.Contains(t, err.Error(), tt.msg, tt.src)
	}
}

func TestParseSortErrorWraps(t *testing.T) {
	_, err := Parse(strings.NewReader("sort size"))
	assert.True(t, errors.Is(err, view.ErrUnknownSortKey))
}

func TestRunScenario(t *testing.T) {
	s := newSession()
	err := Run(s, strings.NewReader("add 3 Socks\nadd Hat\ntoggle 1\n"), never)
	require.NoError(t, err)

	st, ok := s.Summary()
	require.True(t, ok)
	assert.Equal(t, view.Stats{Total: 2, Packed: 1, Percentage: 50}, st)
	it, _ := s.ItemAt(1)
	assert.Equal(t, "Socks", it.Name)
	assert.True(t, it.Packed)
}

func TestRunPositionsFollowSort(t *testing.T) {
	s := newSession()
	src := "add b\nadd a\nadd c\nsort a-z\ndelete 1\n"
	require.NoError(t, Run(s, strings.NewReader(src), never))

	s.SetSort(view.SortOldest)
	var names []string
	for _, it := range s.Items() {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"b", "c"}, names)
}

func TestRunClearNeedsConfirmation(t *testing.T) {
	s := newSession()
	require.NoError(t, Run(s, strings.NewReader("add a\nadd b\nclear\n"), never))
	assert.Equal(t, 2, s.Len())

	require.NoError(t, Run(s, strings.NewReader("clear\n"), always))
	assert.Equal(t, 0, s.Len())
}

func TestRunSkipsRejectedAndMissing(t *testing.T) {
	s := newSession()
	src := "add 25 Tent\nadd 0 Rope\ntoggle 4\ndelete 9\nadd 20 Pegs\n"
	require.NoError(t, Run(s, strings.NewReader(src), never))
	require.Equal(t, 1, s.Len())
	it, _ := s.ItemAt(1)
	assert.Equal(t, "Pegs", it.Name)
	assert.Equal(t, 20, it.Quantity)
	assert.False(t, it.Packed)
}

func TestRunAppliesNothingOnParseError(t *testing.T) {
	s := newSession()
	err := Run(s, strings.NewReader("add a\nbogus\n"), never)
	require.Error(t, err)
	assert.Equal(t, 0, s.Len())
}
