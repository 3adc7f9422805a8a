// Package tui is the interactive packing list.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/travelcheck/internal/logging"
	"github.com/idilsaglam/travelcheck/internal/model"
	"github.com/idilsaglam/travelcheck/internal/session"
	"github.com/idilsaglam/travelcheck/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	item model.Item
}

func (i listItem) Title() string       { return fmt.Sprintf("%d %s", i.item.Quantity, i.item.Name) }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Name }

// single-line rows
type itemDelegate struct {
	theme ui.Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Selected.Render(">") + " "
	}
	fmt.Fprintln(w, prefix+d.theme.ItemLine(it.item))
}

var (
	addKey    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleKey = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "packed"))
	deleteKey = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	sortKey   = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort"))
	clearKey  = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear list"))
	quitKey   = key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit"))
)

// Model is the Bubble Tea model. Every event goes through the session and
// the list is rebuilt from a fresh snapshot afterwards.
type Model struct {
	session *session.Session
	theme   ui.Theme
	list    list.Model
	log     zerolog.Logger

	width, height int

	// inline add form
	adding   bool
	ti       textinput.Model
	quantity int
	addErr   string

	// clear confirmation
	confirming bool
}

// New builds the model over s.
func New(s *session.Session, t ui.Theme) Model {
	l := list.New(nil, itemDelegate{theme: t}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()
	extra := func() []key.Binding {
		return []key.Binding{addKey, toggleKey, deleteKey, sortKey, clearKey, quitKey}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Item..."
	ti.CharLimit = 200

	m := Model{
		session:  s,
		theme:    t,
		list:     l,
		log:      logging.GetLogger("tui"),
		ti:       ti,
		quantity: model.MinQuantity,
		width:    80,
		height:   24,
	}
	m.refresh()
	m.relayout()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(s *session.Session, t ui.Theme) error {
	p := tea.NewProgram(New(s, t), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.relayout()
		return m, nil
	}
	if m.adding {
		return m.updateAdding(msg)
	}
	if m.confirming {
		return m.updateConfirming(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		return m.passToList(msg)
	}

	switch {
	case key.Matches(km, quitKey):
		if m.list.FilterState() == list.FilterApplied && km.String() == "esc" {
			return m.passToList(msg)
		}
		return m, tea.Quit
	case key.Matches(km, toggleKey):
		if it, ok := m.selected(); ok {
			m.session.TogglePacked(it.ID)
			m.log.Debug().Int64("id", it.ID).Msg("toggle")
		}
		cmd := m.refresh()
		return m, cmd
	case key.Matches(km, deleteKey):
		if it, ok := m.selected(); ok {
			m.session.Delete(it.ID)
			m.log.Debug().Int64("id", it.ID).Msg("delete")
		}
		cmd := m.refresh()
		return m, cmd
	case key.Matches(km, sortKey):
		m.session.SetSort(m.session.Sort().Next())
		cmd := m.refresh()
		return m, cmd
	case key.Matches(km, clearKey):
		if m.session.Len() > 0 {
			m.confirming = true
			m.relayout()
		}
		return m, nil
	case key.Matches(km, addKey):
		m.adding = true
		m.addErr = ""
		m.quantity = model.MinQuantity
		m.ti.SetValue("")
		m.relayout()
		cmd := m.ti.Focus()
		return m, cmd
	}
	return m.passToList(msg)
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			name := m.ti.Value()
			if name == "" {
				m.addErr = "Name cannot be empty"
				return m, nil
			}
			it, ok := m.session.Add(name, m.quantity)
			if !ok {
				m.addErr = "Item rejected"
				return m, nil
			}
			m.log.Debug().Int64("id", it.ID).Msg("add")
			m.closeAdd()
			cmd := m.refresh()
			return m, cmd
		case "esc":
			m.closeAdd()
			return m, nil
		case "up":
			if m.quantity < model.MaxQuantity {
				m.quantity++
			}
			return m, nil
		case "down":
			if m.quantity > model.MinQuantity {
				m.quantity--
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeAdd() {
	m.adding = false
	m.addErr = ""
	m.quantity = model.MinQuantity
	m.ti.SetValue("")
	m.ti.Blur()
	m.relayout()
}

func (m Model) updateConfirming(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	answer := km.String() == "y" || km.String() == "Y"
	m.confirming = false
	m.relayout()
	if m.session.Clear(session.ConfirmFunc(func(string) bool { return answer })) {
		m.log.Debug().Msg("clear")
	}
	cmd := m.refresh()
	return m, cmd
}

func (m Model) passToList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) selected() (model.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return li.item, true
}

// refresh rebuilds the rows and title from the session.
func (m *Model) refresh() tea.Cmd {
	snap := m.session.Snapshot()
	rows := make([]list.Item, 0, len(snap.Items))
	for _, it := range snap.Items {
		rows = append(rows, listItem{item: it})
	}
	m.list.Title = m.theme.Header(snap.Stats)
	return m.list.SetItems(rows)
}

// relayout sizes the list around the footer and any open prompt.
func (m *Model) relayout() {
	reserved := 4
	if m.adding || m.confirming {
		reserved += 4
	}
	h := m.height - reserved
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	m.list.SetSize(w, h)
}

func (m Model) View() string {
	parts := []string{m.list.View()}

	bar := lipgloss.NewStyle().Border(m.theme.Border).BorderForeground(m.theme.BorderColor).Padding(0, 1)
	switch {
	case m.adding:
		title := fmt.Sprintf("What do you need to pack for your trip?  %s %d",
			m.theme.Accent.Render("qty (↑/↓)"), m.quantity)
		if m.addErr != "" {
			title += "  " + m.theme.Error.Render(m.addErr)
		}
		parts = append(parts, bar.Render(title+"\n"+m.ti.View()))
	case m.confirming:
		parts = append(parts, bar.Render(session.ClearPrompt+" "+m.theme.Muted.Render("(y/n)")))
	}

	snap := m.session.Snapshot()
	parts = append(parts,
		m.theme.Muted.Render(snap.Sort.Label()),
		m.theme.Title.Render(ui.StatsMessage(snap.Stats, !snap.Empty)),
	)
	return m.theme.Panel([]string{strings.Join(parts, "\n")})
}
