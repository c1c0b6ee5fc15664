package board_test

import (
	"testing"
	"time"

	"countdown/internal/modules/countdown/domain"
	countdownout "countdown/internal/modules/countdown/port/out"
	"countdown/internal/platform/schedule"
	"countdown/internal/ui/board"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type pending struct {
	fn        func()
	cancelled bool
}

type afterScheduler struct{ queue []*pending }

func (s *afterScheduler) Every(time.Duration, func()) schedule.Cancel { return func() {} }

func (s *afterScheduler) After(_ time.Duration, fn func()) schedule.Cancel {
	p := &pending{fn: fn}
	s.queue = append(s.queue, p)
	return func() { p.cancelled = true }
}

// fireAll runs every queued callback, including cancelled ones, the way a
// timer that already fired would race its cancellation.
func (s *afterScheduler) fireAll() {
	queue := s.queue
	s.queue = nil
	for _, p := range queue {
		p.fn()
	}
}

func newBoard() (*board.Board, *fakeClock, *afterScheduler) {
	clk := &fakeClock{now: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
	sched := &afterScheduler{}
	return board.New(clk, sched, 5*time.Second, 3*time.Second), clk, sched
}

func TestPrimaryRenderAndReset(t *testing.T) {
	t.Parallel()
	b, _, _ := newBoard()
	b.RenderPrimary(domain.BreakdownOf(90061000), 0.25, "Launch")
	snap := b.Snapshot()
	if !snap.PrimaryActive || snap.PrimaryName != "Launch" || snap.Primary.Days != 1 || snap.ElapsedFraction != 0.25 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	b.ResetPrimaryDisplay()
	snap = b.Snapshot()
	if snap.PrimaryActive || !snap.Primary.IsZero() || snap.ElapsedFraction != 0 {
		t.Fatalf("expected reset primary display, got %+v", snap)
	}
}

func TestSecondaryLifecycleKeepsOrder(t *testing.T) {
	t.Parallel()
	b, _, _ := newBoard()
	b.AttachSecondary("a", "Timer 1")
	b.AttachSecondary("b", "Timer 2")
	b.AttachSecondary("a", "Timer 1")
	b.RenderSecondary("b", domain.Breakdown{Minutes: 2})
	b.RenderSecondary("ghost", domain.Breakdown{Minutes: 9})
	snap := b.Snapshot()
	if len(snap.Secondaries) != 2 || snap.Secondaries[0].ID != "a" || snap.Secondaries[1].Breakdown.Minutes != 2 {
		t.Fatalf("unexpected secondaries %+v", snap.Secondaries)
	}
	b.DetachSecondary("ghost")
	b.DetachSecondary("a")
	snap = b.Snapshot()
	if len(snap.Secondaries) != 1 || snap.Secondaries[0].ID != "b" {
		t.Fatalf("unexpected secondaries after detach %+v", snap.Secondaries)
	}
}

func TestDialogAutoDismissIgnoresStaleTimers(t *testing.T) {
	t.Parallel()
	b, _, sched := newBoard()
	b.ShowCompletionDialog("First")
	first := sched.queue[0]
	b.ShowCompletionDialog("Second")
	if !first.cancelled {
		t.Fatalf("a newer dialog must cancel the older dismiss")
	}

	first.fn()
	if snap := b.Snapshot(); !snap.DialogOpen || snap.DialogName != "Second" {
		t.Fatalf("stale dismiss closed the newer dialog: %+v", snap)
	}
	sched.fireAll()
	if snap := b.Snapshot(); snap.DialogOpen {
		t.Fatalf("expected dialog dismissed, got %+v", snap)
	}
}

func TestCloseDialogByHand(t *testing.T) {
	t.Parallel()
	b, _, sched := newBoard()
	b.ShowCompletionDialog("Tea")
	b.CloseDialog()
	if b.Snapshot().DialogOpen {
		t.Fatalf("expected dialog closed")
	}
	if !sched.queue[0].cancelled {
		t.Fatalf("closing by hand must cancel the auto-dismiss")
	}
	b.CloseDialog()
}

func TestNotificationsExpire(t *testing.T) {
	t.Parallel()
	b, clk, _ := newBoard()
	b.Notify(`Timer "Tea" started!`, countdownout.SeveritySuccess)
	clk.now = clk.now.Add(2 * time.Second)
	b.Notify("Timer paused", countdownout.SeverityInfo)

	snap := b.Snapshot()
	if len(snap.Notifications) != 2 {
		t.Fatalf("expected two live notifications, got %+v", snap.Notifications)
	}
	version := snap.Version
	clk.now = clk.now.Add(1500 * time.Millisecond)
	snap = b.Snapshot()
	if len(snap.Notifications) != 1 || snap.Notifications[0].Message != "Timer paused" {
		t.Fatalf("expected only the newer notification, got %+v", snap.Notifications)
	}
	if snap.Version == version {
		t.Fatalf("pruning must bump the version")
	}
}

func TestPausedMarkClearsOnRenderAndReset(t *testing.T) {
	t.Parallel()
	b, _, _ := newBoard()
	b.MarkPrimaryPaused(true)
	if b.Snapshot().PrimaryPaused {
		t.Fatalf("no primary on display, nothing to mark")
	}
	b.RenderPrimary(domain.Breakdown{Minutes: 3}, 0.1, "Tea")
	b.MarkPrimaryPaused(true)
	if !b.Snapshot().PrimaryPaused {
		t.Fatalf("expected paused primary")
	}
	b.RenderPrimary(domain.Breakdown{Minutes: 2}, 0.2, "Tea")
	if b.Snapshot().PrimaryPaused {
		t.Fatalf("a fresh frame means the timer runs again")
	}
	b.MarkPrimaryPaused(true)
	b.ResetPrimaryDisplay()
	if b.Snapshot().PrimaryPaused {
		t.Fatalf("reset must clear the paused mark")
	}
}
