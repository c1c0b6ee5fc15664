package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"countdown/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

// hints must stay in sync with the switch in app/model.go executePalette.
var paletteHints = []string{
	"start <when> [name]",
	"add <when> [name]",
	"preset <minutes>",
	"pause",
	"reset",
	"remove <id>",
	"sound",
	"theme [name]",
}

// Palette is a command-palette overlay backed by bubbles/textinput.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
}

// NewPalette creates an inactive Palette ready to be opened.
func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "start 25m Tea"
	ti.CharLimit = 256
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette, clears the input, and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) View(t theme.Theme) string {
	if !p.visible {
		return ""
	}
	var matching []string
	for _, h := range Suggest(p.input.Value()) {
		matching = append(matching, h)
		if len(matching) == 5 {
			break
		}
	}

	var sb strings.Builder
	sb.WriteString(t.Title().Render("Command Palette") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if len(matching) > 0 {
		sb.WriteString("\n")
		for _, h := range matching {
			sb.WriteString(t.Muted().Render("  "+h) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Background(t.Mantle).
		Foreground(t.Text).
		Padding(0, 1).
		Width(w - 2).
		Render(sb.String())
}

// Suggest returns the hints whose command word starts with the typed prefix.
func Suggest(input string) []string {
	prefix := strings.ToLower(strings.TrimSpace(input))
	if word, _, found := strings.Cut(prefix, " "); found {
		prefix = word
	}
	var out []string
	for _, h := range paletteHints {
		if strings.HasPrefix(h, prefix) {
			out = append(out, h)
		}
	}
	return out
}
