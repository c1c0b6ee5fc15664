package timers

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"countdown/internal/ui/board"
	"countdown/internal/ui/theme"
)

// Model is the mini-timer list. It only tracks the cursor; rows come from the
// board snapshot on every frame.
type Model struct {
	cursor int
	width  int
}

func New() Model { return Model{} }

func (m *Model) SetWidth(w int) { m.width = w }

func (m *Model) Up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) Down(snap board.Snapshot) {
	if m.cursor < len(snap.Secondaries)-1 {
		m.cursor++
	}
}

// Selected returns the timer under the cursor, clamping it when rows vanished.
func (m *Model) Selected(snap board.Snapshot) (board.Secondary, bool) {
	if len(snap.Secondaries) == 0 {
		m.cursor = 0
		return board.Secondary{}, false
	}
	if m.cursor >= len(snap.Secondaries) {
		m.cursor = len(snap.Secondaries) - 1
	}
	return snap.Secondaries[m.cursor], true
}

func (m Model) View(snap board.Snapshot, t theme.Theme) string {
	if len(snap.Secondaries) == 0 {
		return ""
	}
	cursor := m.cursor
	if cursor >= len(snap.Secondaries) {
		cursor = len(snap.Secondaries) - 1
	}

	rows := []string{t.Title().Render("Timers")}
	for i, s := range snap.Secondaries {
		line := fmt.Sprintf("%-20s %s", s.Name, s.Breakdown.String())
		if i == cursor {
			rows = append(rows, t.Hot().Render("› "+line))
			continue
		}
		rows = append(rows, t.Muted().Render("  "+line))
	}
	w := m.width
	if w < 30 {
		w = 30
	}
	return t.Pane().Width(w - 2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
