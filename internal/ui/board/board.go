// Package board holds the display state of the interactive widget. The timer
// registry writes into it through the Renderer and dialog/notify methods; the
// bubbletea program reads it back with Snapshot on every frame.
package board

import (
	"sync"
	"time"

	"countdown/internal/modules/countdown/domain"
	countdownout "countdown/internal/modules/countdown/port/out"
	"countdown/internal/platform/clock"
	"countdown/internal/platform/schedule"
)

type Secondary struct {
	ID        string
	Name      string
	Breakdown domain.Breakdown
}

type Notification struct {
	Message  string
	Severity countdownout.Severity
	Expires  time.Time
}

type Snapshot struct {
	PrimaryActive   bool
	PrimaryName     string
	PrimaryPaused   bool
	Primary         domain.Breakdown
	ElapsedFraction float64

	Secondaries   []Secondary
	Notifications []Notification

	DialogOpen bool
	DialogName string

	// Version changes on every mutation.
	Version uint64
}

type Board struct {
	clock        clock.Clock
	scheduler    schedule.Scheduler
	dismissAfter time.Duration
	ttl          time.Duration

	mu            sync.Mutex
	primaryActive bool
	primaryName   string
	primaryPaused bool
	primary       domain.Breakdown
	fraction      float64
	secondaries   []Secondary
	notifications []Notification
	dialogOpen    bool
	dialogName    string
	dialogSeq     uint64
	cancelDismiss schedule.Cancel
	version       uint64
}

func New(clk clock.Clock, scheduler schedule.Scheduler, dismissAfter, notificationTTL time.Duration) *Board {
	return &Board{
		clock:        clk,
		scheduler:    scheduler,
		dismissAfter: dismissAfter,
		ttl:          notificationTTL,
	}
}

func (b *Board) RenderPrimary(d domain.Breakdown, elapsedFraction float64, name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.primaryActive = true
	b.primaryName = name
	// Paused timers are never rendered.
	b.primaryPaused = false
	b.primary = d
	b.fraction = elapsedFraction
	b.version++
}

func (b *Board) ResetPrimaryDisplay() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.primaryActive = false
	b.primaryName = ""
	b.primaryPaused = false
	b.primary = domain.Breakdown{}
	b.fraction = 0
	b.version++
}

func (b *Board) MarkPrimaryPaused(paused bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.primaryActive || b.primaryPaused == paused {
		return
	}
	b.primaryPaused = paused
	b.version++
}

func (b *Board) AttachSecondary(id, name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.indexOf(id) >= 0 {
		return
	}
	b.secondaries = append(b.secondaries, Secondary{ID: id, Name: name})
	b.version++
}

func (b *Board) RenderSecondary(id string, d domain.Breakdown) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.indexOf(id); i >= 0 {
		b.secondaries[i].Breakdown = d
		b.version++
	}
}

func (b *Board) DetachSecondary(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOf(id)
	if i < 0 {
		return
	}
	b.secondaries = append(b.secondaries[:i], b.secondaries[i+1:]...)
	b.version++
}

// ShowCompletionDialog opens the completion modal and arms its auto-dismiss.
// A newer dialog supersedes the pending dismiss of an older one.
func (b *Board) ShowCompletionDialog(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancelDismiss != nil {
		b.cancelDismiss()
		b.cancelDismiss = nil
	}
	b.dialogSeq++
	b.dialogOpen = true
	b.dialogName = name
	b.version++
	if b.dismissAfter > 0 && b.scheduler != nil {
		seq := b.dialogSeq
		b.cancelDismiss = b.scheduler.After(b.dismissAfter, func() { b.dismiss(seq) })
	}
}

// CloseDialog dismisses the modal by hand.
func (b *Board) CloseDialog() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dismissLocked(b.dialogSeq)
}

func (b *Board) dismiss(seq uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dismissLocked(seq)
}

func (b *Board) dismissLocked(seq uint64) {
	if !b.dialogOpen || seq != b.dialogSeq {
		return
	}
	if b.cancelDismiss != nil {
		b.cancelDismiss()
		b.cancelDismiss = nil
	}
	b.dialogOpen = false
	b.dialogName = ""
	b.version++
}

func (b *Board) Notify(message string, severity countdownout.Severity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notifications = append(b.notifications, Notification{
		Message:  message,
		Severity: severity,
		Expires:  b.clock.Now().Add(b.ttl),
	})
	b.version++
}

// Snapshot prunes expired notifications and returns a copy of the state.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()
	live := b.notifications[:0]
	for _, n := range b.notifications {
		if now.Before(n.Expires) {
			live = append(live, n)
		}
	}
	if len(live) != len(b.notifications) {
		b.version++
	}
	b.notifications = live

	return Snapshot{
		PrimaryActive:   b.primaryActive,
		PrimaryName:     b.primaryName,
		PrimaryPaused:   b.primaryPaused,
		Primary:         b.primary,
		ElapsedFraction: b.fraction,
		Secondaries:     append([]Secondary(nil), b.secondaries...),
		Notifications:   append([]Notification(nil), live...),
		DialogOpen:      b.dialogOpen,
		DialogName:      b.dialogName,
		Version:         b.version,
	}
}

func (b *Board) indexOf(id string) int {
	for i, s := range b.secondaries {
		if s.ID == id {
			return i
		}
	}
	return -1
}
