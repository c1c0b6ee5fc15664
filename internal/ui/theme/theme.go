package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

const Default = "golden"

// Theme is a named colour set. Styles are derived on demand so a theme switch
// takes effect on the next frame.
type Theme struct {
	Name    string
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Accent  lipgloss.Color
	Accent2 lipgloss.Color
	Urgent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

var themes = map[string]Theme{
	"golden": {
		Name: "golden", Base: "#1c1a14", Mantle: "#15130e", Surface: "#3a3322",
		Text: "#f5e9c8", Subtext: "#b8a77a", Accent: "#f2c14e", Accent2: "#f78154",
		Urgent: "#ff4444", Success: "#a6e3a1", Error: "#f38ba8",
	},
	"ocean": {
		Name: "ocean", Base: "#0f1c2e", Mantle: "#0a1422", Surface: "#1f3552",
		Text: "#d6e6f5", Subtext: "#8aa4c0", Accent: "#4fc3f7", Accent2: "#26a69a",
		Urgent: "#ff5370", Success: "#80cbc4", Error: "#ff8a80",
	},
	"forest": {
		Name: "forest", Base: "#142018", Mantle: "#0e1711", Surface: "#27402f",
		Text: "#dcebd9", Subtext: "#90ab93", Accent: "#8bc34a", Accent2: "#cddc39",
		Urgent: "#ff5252", Success: "#b9f6ca", Error: "#ff8a80",
	},
	"sunset": {
		Name: "sunset", Base: "#24141c", Mantle: "#1a0e14", Surface: "#452536",
		Text: "#fbe3e8", Subtext: "#c49aa8", Accent: "#ff7e5f", Accent2: "#feb47b",
		Urgent: "#ff1744", Success: "#ffd180", Error: "#ff80ab",
	},
	"midnight": {
		Name: "midnight", Base: "#1e1e2e", Mantle: "#181825", Surface: "#45475a",
		Text: "#cdd6f4", Subtext: "#a6adc8", Accent: "#b4befe", Accent2: "#74c7ec",
		Urgent: "#f38ba8", Success: "#a6e3a1", Error: "#fab387",
	},
}

// Names lists the available themes alphabetically.
func Names() []string {
	out := make([]string, 0, len(themes))
	for name := range themes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Get returns the named theme, falling back to the default.
func Get(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[Default]
}

// Next cycles through Names.
func Next(name string) Theme {
	names := Names()
	for i, n := range names {
		if n == name {
			return themes[names[(i+1)%len(names)]]
		}
	}
	return themes[Default]
}

func (t Theme) App() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.Base).Foreground(t.Text).Padding(1, 2)
}

func (t Theme) Pane() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Surface).
		Foreground(t.Text).
		Padding(0, 1)
}

func (t Theme) Title() lipgloss.Style { return lipgloss.NewStyle().Foreground(t.Accent).Bold(true) }
func (t Theme) Muted() lipgloss.Style { return lipgloss.NewStyle().Foreground(t.Subtext) }
func (t Theme) Hot() lipgloss.Style   { return lipgloss.NewStyle().Foreground(t.Accent2).Bold(true) }
func (t Theme) Alarm() lipgloss.Style { return lipgloss.NewStyle().Foreground(t.Urgent).Bold(true) }
