package primary

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"countdown/internal/modules/countdown/domain"
	"countdown/internal/ui/board"
	"countdown/internal/ui/theme"
)

// glyphs is a 3x5 block font for the main display.
var glyphs = map[rune][5]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "▪", " ", "▪", " "},
}

var labels = [4]string{"DAYS", "HOURS", "MINUTES", "SECONDS"}

type Model struct {
	bar   progress.Model
	width int
}

func New() Model {
	return Model{bar: progress.New(progress.WithoutPercentage(), progress.WithWidth(40))}
}

func (m *Model) SetWidth(w int) {
	m.width = w
	bw := w - 8
	if bw > 60 {
		bw = 60
	}
	if bw < 10 {
		bw = 10
	}
	m.bar.Width = bw
}

func (m Model) View(snap board.Snapshot, t theme.Theme) string {
	if !snap.PrimaryActive {
		idle := t.Muted().Render("No countdown running.  Press : and type start 25m, or 1-5 for a preset.")
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, idle)
	}

	digitStyle := t.Title()
	switch {
	case snap.PrimaryPaused:
		digitStyle = t.Muted()
	case Urgent(snap.Primary):
		digitStyle = t.Alarm()
	}

	d := snap.Primary.Digits()
	cols := make([]string, 0, 7)
	for i, field := range d {
		if i > 0 {
			cols = append(cols, digitStyle.Render(Big(":")))
		}
		block := lipgloss.JoinVertical(lipgloss.Center,
			digitStyle.Render(Big(field)),
			t.Muted().Render(labels[i]),
		)
		cols = append(cols, block)
	}
	digits := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	bar := m.bar
	bar.FullColor = string(t.Accent)
	bar.EmptyColor = string(t.Surface)

	title := t.Hot().Render(snap.PrimaryName)
	if snap.PrimaryPaused {
		title += "  " + t.Muted().Render("PAUSED · space to resume")
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		digits,
		"",
		bar.ViewAs(snap.ElapsedFraction),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}

// Urgent reports whether a running display is inside its final minute.
func Urgent(b domain.Breakdown) bool {
	return !b.IsZero() && b.Millis() < domain.UrgencyThreshold.Milliseconds()
}

// Big renders s in the block font, one space between glyphs.
func Big(s string) string {
	var rows [5]strings.Builder
	for i, r := range s {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for row := range rows {
			if i > 0 {
				rows[row].WriteString(" ")
			}
			rows[row].WriteString(g[row])
		}
	}
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}
