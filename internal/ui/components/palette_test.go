package components_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"countdown/internal/ui/components"
)

func TestSuggestMatchesCommandWord(t *testing.T) {
	t.Parallel()
	if got := components.Suggest("pre"); len(got) != 1 || got[0] != "preset <minutes>" {
		t.Fatalf("unexpected suggestions %v", got)
	}
	if got := components.Suggest("start 25m Tea"); len(got) != 1 {
		t.Fatalf("arguments must not defeat matching, got %v", got)
	}
	if got := components.Suggest(""); len(got) != 8 {
		t.Fatalf("empty input must list every hint, got %d", len(got))
	}
}

func TestPaletteSubmitAndCancel(t *testing.T) {
	t.Parallel()
	p := components.NewPalette()
	p.Open()
	for _, r := range "pause" {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() || cmd == nil {
		t.Fatalf("enter must close the palette and emit a command")
	}
	if msg, ok := cmd().(components.PaletteSubmitMsg); !ok || msg.Input != "pause" {
		t.Fatalf("unexpected submit message %#v", cmd())
	}

	p.Open()
	p, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() {
		t.Fatalf("esc must close the palette")
	}
	if _, ok := cmd().(components.PaletteCancelMsg); !ok {
		t.Fatalf("expected cancel message")
	}
}
