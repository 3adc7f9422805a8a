package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/idilsaglam/travelcheck/internal/session"
	"github.com/idilsaglam/travelcheck/internal/store"
	"github.com/idilsaglam/travelcheck/internal/ui"
	"github.com/idilsaglam/travelcheck/internal/view"
)

func newModel(t *testing.T) (Model, *session.Session) {
	t.Helper()
	th, err := ui.ThemeByName("mono")
	require.NoError(t, err)
	s := session.New(store.New(), view.NewProjector(language.English), view.SortOldest)
	m := New(s, th)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model), s
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func TestAddItem(t *testing.T) {
	m, s := newModel(t)

	m = press(m, "a")
	require.True(t, m.adding)
	m = press(m, "Socks", "up", "up", "enter")
	assert.False(t, m.adding)

	require.Equal(t, 1, s.Len())
	it, _ := s.ItemAt(1)
	assert.Equal(t, "Socks", it.Name)
	assert.Equal(t, 3, it.Quantity)
	assert.False(t, it.Packed)
	assert.Len(t, m.list.Items(), 1)
}

func TestAddQuantityClamped(t *testing.T) {
	m, s := newModel(t)
	m = press(m, "a", "down", "down")
	assert.Equal(t, 1, m.quantity)
	for i := 0; i < 30; i++ {
		m = press(m, "up")
	}
	assert.Equal(t, 20, m.quantity)
	m = press(m, "Tent", "enter")
	it, _ := s.ItemAt(1)
	assert.Equal(t, 20, it.Quantity)
}

func TestAddEmptyNameRejected(t *testing.T) {
	m, s := newModel(t)
	m = press(m, "a", "enter")
	assert.True(t, m.adding)
	assert.NotEmpty(t, m.addErr)
	assert.Equal(t, 0, s.Len())
	assert.Contains(t, m.View(), "Name cannot be empty")

	m = press(m, "esc")
	assert.False(t, m.adding)
	assert.Equal(t, 0, s.Len())
}

func TestToggleAndDelete(t *testing.T) {
	m, s := newModel(t)
	m = press(m, "a", "Socks", "enter", "a", "Hat", "enter")
	require.Equal(t, 2, s.Len())

	m = press(m, "space")
	st, ok := s.Summary()
	require.True(t, ok)
	assert.Equal(t, view.Stats{Total: 2, Packed: 1, Percentage: 50}, st)
	assert.Contains(t, m.View(), "You've already packed 1 items (50%)")

	m = press(m, "d")
	require.Equal(t, 1, s.Len())
	it, _ := s.ItemAt(1)
	assert.Equal(t, "Hat", it.Name)
	assert.Len(t, m.list.Items(), 1)
}

func TestSortCycles(t *testing.T) {
	m, s := newModel(t)
	m = press(m, "a", "b", "enter", "a", "a", "enter")

	m = press(m, "s")
	assert.Equal(t, view.SortNewest, s.Sort())
	m = press(m, "s")
	assert.Equal(t, view.SortAZ, s.Sort())
	assert.Contains(t, m.View(), "Sort by a-z")

	first := m.list.Items()[0].(listItem)
	assert.Equal(t, "a", first.item.Name)
}

func TestClearAsksFirst(t *testing.T) {
	m, s := newModel(t)

	// nothing to clear, no prompt
	m = press(m, "c")
	assert.False(t, m.confirming)

	m = press(m, "a", "Socks", "enter")
	m = press(m, "c")
	require.True(t, m.confirming)
	assert.Contains(t, m.View(), session.ClearPrompt)

	m = press(m, "n")
	assert.False(t, m.confirming)
	assert.Equal(t, 1, s.Len())

	m = press(m, "c", "y")
	assert.False(t, m.confirming)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, m.list.Items())
	assert.Contains(t, m.View(), ui.EmptyMessage)
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestViewShowsItems(t *testing.T) {
	m, _ := newModel(t)
	m = press(m, "a", "Sun hat", "enter")
	out := m.View()
	assert.True(t, strings.Contains(out, "[ ] 1 Sun hat"), out)
	assert.Contains(t, out, ui.AppTitle)
}

func TestAddKeepsNameAsTyped(t *testing.T) {
	m, s := newModel(t)
	m = press(m, "a", " Socks ", "enter")
	assert.False(t, m.adding)
	require.Equal(t, 1, s.Len())
	it, _ := s.ItemAt(1)
	assert.Equal(t, " Socks ", it.Name)
}
