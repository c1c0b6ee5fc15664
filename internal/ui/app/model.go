package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	countdowndto "countdown/internal/modules/countdown/dto"
	countdownout "countdown/internal/modules/countdown/port/out"
	preferencesdto "countdown/internal/modules/preferences/dto"
	apperrors "countdown/internal/platform/errors"
	"countdown/internal/ui/board"
	"countdown/internal/ui/components"
	"countdown/internal/ui/theme"
	primaryview "countdown/internal/ui/views/primary"
	timersview "countdown/internal/ui/views/timers"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type countdownPort interface {
	Start(ctx context.Context, target, name string) (countdowndto.TimerOutput, error)
	StartPreset(ctx context.Context, minutes int) (countdowndto.TimerOutput, error)
	Add(ctx context.Context, target, name string) (countdowndto.TimerOutput, error)
	Pause(ctx context.Context) (countdowndto.PauseOutput, error)
	Reset(ctx context.Context) error
	Remove(ctx context.Context, timerID string) error
	Presets(ctx context.Context) []countdowndto.PresetOutput
	ToggleSound(ctx context.Context) (bool, error)
	SoundEnabled(ctx context.Context) bool
}

type preferencesPort interface {
	Get(ctx context.Context) (preferencesdto.PreferencesOutput, error)
	SetTheme(ctx context.Context, theme string) (preferencesdto.PreferencesOutput, error)
}

type boardPort interface {
	Snapshot() board.Snapshot
	CloseDialog()
}

// FrameInterval is how often the model re-reads the board.
const FrameInterval = 100 * time.Millisecond

// ─── async messages ──────────────────────────────────────────────────────────

type frameMsg time.Time

type actionDoneMsg struct {
	status string
	err    error
}

type themeChangedMsg struct {
	theme string
	err   error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Palette key.Binding
	Pause   key.Binding
	Reset   key.Binding
	Remove  key.Binding
	Preset  key.Binding
	Sound   key.Binding
	Theme   key.Binding
	Up      key.Binding
	Down    key.Binding
	Close   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Pause:   key.NewBinding(key.WithKeys(" ", "space", "ctrl+@"), key.WithHelp("space", "pause/resume")),
		Reset:   key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "reset")),
		Remove:  key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove timer")),
		Preset:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "preset")),
		Sound:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "sound")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "select")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑/↓", "select")),
		Close:   key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "close dialog")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Palette, k.Pause, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Palette, k.Preset, k.Pause, k.Reset},
		{k.Up, k.Remove, k.Sound, k.Theme},
		{k.Close, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. Timer state lives in the registry and is
// mirrored by the board; the model only reads board snapshots and forwards
// user intent to the ports.
type Model struct {
	countdown countdownPort
	prefs     preferencesPort
	board     boardPort

	primary primaryview.Model
	timers  timersview.Model

	snap     board.Snapshot
	theme    theme.Theme
	presets  []countdowndto.PresetOutput
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(countdown countdownPort, prefs preferencesPort, b boardPort, themeName string) Model {
	return Model{
		countdown: countdown,
		prefs:     prefs,
		board:     b,
		primary:   primaryview.New(),
		timers:    timersview.New(),
		snap:      b.Snapshot(),
		theme:     theme.Get(themeName),
		presets:   countdown.Presets(context.Background()),
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return frameCmd()
}

func frameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.primary.SetWidth(m.width)
		m.timers.SetWidth(min(m.width, 60))
		return m, nil

	case frameMsg:
		m.snap = m.board.Snapshot()
		return m, frameCmd()

	case actionDoneMsg:
		m.status = describe(msg.status, msg.err)
		m.snap = m.board.Snapshot()
		return m, nil

	case themeChangedMsg:
		if msg.err != nil {
			m.status = describe("", msg.err)
			return m, nil
		}
		m.theme = theme.Get(msg.theme)
		m.status = "theme: " + m.theme.Name
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil
	}

	// The palette intercepts all remaining input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.showHelp {
		if keyMsg.String() == "?" || keyMsg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}
	if m.snap.DialogOpen && key.Matches(keyMsg, m.keys.Close) {
		m.board.CloseDialog()
		m.snap = m.board.Snapshot()
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.showHelp = true
	case key.Matches(keyMsg, m.keys.Palette):
		return m, m.palette.Open()
	case key.Matches(keyMsg, m.keys.Pause):
		return m, m.pauseCmd()
	case key.Matches(keyMsg, m.keys.Reset):
		return m, m.resetCmd()
	case key.Matches(keyMsg, m.keys.Remove):
		if s, ok := m.timers.Selected(m.snap); ok {
			return m, m.removeCmd(s.ID)
		}
	case key.Matches(keyMsg, m.keys.Preset):
		idx, _ := strconv.Atoi(keyMsg.String())
		if idx >= 1 && idx <= len(m.presets) {
			return m, m.presetCmd(m.presets[idx-1].Minutes)
		}
	case key.Matches(keyMsg, m.keys.Sound):
		return m, m.soundCmd()
	case key.Matches(keyMsg, m.keys.Theme):
		return m, m.themeCmd(theme.Next(m.theme.Name).Name)
	case key.Matches(keyMsg, m.keys.Up):
		m.timers.Up()
	case key.Matches(keyMsg, m.keys.Down):
		m.timers.Down(m.snap)
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View(m.theme))
	case m.snap.DialogOpen:
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.renderDialog())
	default:
		body := lipgloss.JoinVertical(lipgloss.Center,
			m.primary.View(m.snap, m.theme),
			"",
			lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.timers.View(m.snap, m.theme)),
		)
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Model) renderHeader() string {
	sound := "sound on"
	if !m.countdown.SoundEnabled(context.Background()) {
		sound = "sound off"
	}
	left := m.theme.Title().Render("countdown")
	right := m.theme.Muted().Render(sound + "  " + m.theme.Name)
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().Background(m.theme.Mantle).Width(m.width).
		Render(left+strings.Repeat(" ", gap)+right) + "\n"
}

func (m Model) renderFooter() string {
	left := m.status
	if n := len(m.snap.Notifications); n > 0 {
		last := m.snap.Notifications[n-1]
		left = m.notificationStyle(last.Severity).Render(last.Message)
	}
	pause := "space:pause"
	if m.snap.PrimaryPaused {
		pause = "space:resume"
	}
	right := m.theme.Muted().Render("?:help  :::palette  " + pause + "  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return "\n" + lipgloss.NewStyle().Background(m.theme.Mantle).Width(m.width).
		Render(left+strings.Repeat(" ", gap)+right)
}

func (m Model) notificationStyle(severity countdownout.Severity) lipgloss.Style {
	switch severity {
	case countdownout.SeveritySuccess:
		return lipgloss.NewStyle().Foreground(m.theme.Success)
	case countdownout.SeverityError:
		return lipgloss.NewStyle().Foreground(m.theme.Error).Bold(true)
	default:
		return m.theme.Hot()
	}
}

func (m Model) renderDialog() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Alarm().Render("Time's up!"),
		"",
		fmt.Sprintf("%q has finished!", m.snap.DialogName),
		"",
		m.theme.Muted().Render("esc to close"),
	)
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(m.theme.Accent).
		Padding(1, 4).
		Render(body)
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	args := parts[1:]
	switch strings.ToLower(parts[0]) {
	case "start":
		when, name := SplitWhen(args)
		return m, m.startCmd(when, name)
	case "add":
		when, name := SplitWhen(args)
		return m, m.addCmd(when, name)
	case "preset":
		if len(args) != 1 {
			m.status = "usage: preset <minutes>"
			return m, nil
		}
		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			m.status = "preset: minutes must be a number"
			return m, nil
		}
		return m, m.presetCmd(minutes)
	case "pause":
		return m, m.pauseCmd()
	case "reset":
		return m, m.resetCmd()
	case "remove":
		if len(args) == 1 {
			return m, m.removeCmd(args[0])
		}
		if s, ok := m.timers.Selected(m.snap); ok {
			return m, m.removeCmd(s.ID)
		}
		m.status = "usage: remove <id>"
	case "sound":
		return m, m.soundCmd()
	case "theme":
		if len(args) == 0 {
			return m, m.themeCmd(theme.Next(m.theme.Name).Name)
		}
		return m, m.themeCmd(args[0])
	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// SplitWhen separates the target from the optional name. A target written as
// a date and a clock time spans two fields.
func SplitWhen(args []string) (string, string) {
	if len(args) == 0 {
		return "", ""
	}
	if len(args) >= 2 && isDate(args[0]) && strings.Contains(args[1], ":") {
		return args[0] + " " + args[1], strings.Join(args[2:], " ")
	}
	return args[0], strings.Join(args[1:], " ")
}

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) startCmd(when, name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.countdown.Start(context.Background(), when, name)
		return actionDoneMsg{status: "started " + out.Name, err: err}
	}
}

func (m Model) addCmd(when, name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.countdown.Add(context.Background(), when, name)
		return actionDoneMsg{status: "added " + out.Name, err: err}
	}
}

func (m Model) presetCmd(minutes int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.countdown.StartPreset(context.Background(), minutes)
		return actionDoneMsg{status: "started " + out.Name, err: err}
	}
}

func (m Model) pauseCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.countdown.Pause(context.Background())
		switch {
		case err != nil, !out.Found:
			return actionDoneMsg{status: "no countdown running", err: err}
		case out.IsPaused:
			return actionDoneMsg{status: "paused"}
		default:
			return actionDoneMsg{status: "running"}
		}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{status: "ready", err: m.countdown.Reset(context.Background())}
	}
}

func (m Model) removeCmd(timerID string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{status: "ready", err: m.countdown.Remove(context.Background(), timerID)}
	}
}

func (m Model) soundCmd() tea.Cmd {
	return func() tea.Msg {
		enabled, err := m.countdown.ToggleSound(context.Background())
		status := "sound off"
		if enabled {
			status = "sound on"
		}
		return actionDoneMsg{status: status, err: err}
	}
}

func (m Model) themeCmd(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.prefs.SetTheme(context.Background(), name)
		return themeChangedMsg{theme: out.Theme, err: err}
	}
}

func describe(status string, err error) string {
	if err == nil {
		return status
	}
	if v, ok := apperrors.AsValidation(err); ok {
		return v.Reason
	}
	return "error: " + err.Error()
}
