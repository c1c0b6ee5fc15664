package out

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"countdown/internal/modules/countdown/domain"
	countdownout "countdown/internal/modules/countdown/port/out"
)

var (
	lineName   = lipgloss.NewStyle().Bold(true)
	lineUrgent = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)
	lineDone   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	lineError  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	lineMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// LineRenderer draws the primary countdown as a single rewritten terminal
// line. It is the display used by headless runs.
type LineRenderer struct {
	out io.Writer
	bar progress.Model

	mu        sync.Mutex
	names     map[string]string
	order     []string
	done      chan struct{}
	closeOnce sync.Once
}

func NewLineRenderer(out io.Writer) *LineRenderer {
	return &LineRenderer{
		out:   out,
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(24)),
		names: map[string]string{},
		done:  make(chan struct{}),
	}
}

// Done is closed once the primary display has been reset.
func (l *LineRenderer) Done() <-chan struct{} {
	return l.done
}

func (l *LineRenderer) RenderPrimary(b domain.Breakdown, elapsedFraction float64, name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	d := b.Digits()
	clock := strings.Join(d[:], ":")
	if !b.IsZero() && b.Millis() < domain.UrgencyThreshold.Milliseconds() {
		clock = lineUrgent.Render(clock)
	}
	line := fmt.Sprintf("%s  %s  %s", lineName.Render(name), clock, l.bar.ViewAs(elapsedFraction))
	if len(l.order) > 0 {
		others := make([]string, 0, len(l.order))
		for _, id := range l.order {
			others = append(others, l.names[id])
		}
		line += "  " + lineMuted.Render("+ "+strings.Join(others, ", "))
	}
	_, _ = fmt.Fprint(l.out, "\r\033[K"+line)
}

func (l *LineRenderer) AttachSecondary(id, name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.names[id]; !ok {
		l.order = append(l.order, id)
	}
	l.names[id] = name
}

func (l *LineRenderer) RenderSecondary(string, domain.Breakdown) {}

func (l *LineRenderer) DetachSecondary(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.names[id]; !ok {
		return
	}
	delete(l.names, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *LineRenderer) ResetPrimaryDisplay() {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprint(l.out, "\r\033[K")
	l.closeOnce.Do(func() { close(l.done) })
}

func (l *LineRenderer) ShowCompletionDialog(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.out, "\r\033[K%s\n", lineDone.Render(fmt.Sprintf("%q has finished!", name)))
}

func (l *LineRenderer) Notify(message string, severity countdownout.Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	style := lineMuted
	if severity == countdownout.SeverityError {
		style = lineError
	}
	_, _ = fmt.Fprintf(l.out, "\r\033[K%s\n", style.Render(message))
}
