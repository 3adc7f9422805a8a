// Package ui renders packing-list state as styled terminal text.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/travelcheck/internal/model"
	"github.com/idilsaglam/travelcheck/internal/view"
)

const AppTitle = "Travel Check"

// Stats sentences.
const (
	EmptyMessage    = "Start adding items to your packing list 🧳"
	CompleteMessage = "You got everything! You're ready to go ✈️"
)

// StatsMessage words the summary. ok is the second result of view.Summarize.
func StatsMessage(st view.Stats, ok bool) string {
	if !ok {
		return EmptyMessage
	}
	if st.Complete() {
		return CompleteMessage
	}
	return fmt.Sprintf("You have %d items on your list. You've already packed %d items (%d%%)",
		st.Total, st.Packed, st.Percentage)
}

// ItemLine renders "☐ 3 Socks"; packed items get the checked box and strike style.
func (t Theme) ItemLine(it model.Item) string {
	text := fmt.Sprintf("%d %s", it.Quantity, it.Name)
	if it.Packed {
		return t.Success.Render(t.BoxChecked) + " " + t.Packed.Render(text)
	}
	return t.Muted.Render(t.BoxUnchecked) + " " + text
}

// Header is the title line with live counts.
func (t Theme) Header(st view.Stats) string {
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render(AppTitle),
		t.Success.Render(t.SymDone), st.Packed,
		t.Pending.Render(t.SymPending), st.Total-st.Packed,
		t.Accent.Render("Total"), st.Total,
	)
}

// ProgressBar renders a bar with the summary percentage.
func ProgressBar(st view.Stats, width int) string {
	if width < 5 {
		width = 5
	}
	filled := 0
	if st.Total > 0 {
		filled = st.Packed * width / st.Total
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, st.Percentage)
}

// Panel frames lines in the theme's border.
func (t Theme) Panel(lines []string) string {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
