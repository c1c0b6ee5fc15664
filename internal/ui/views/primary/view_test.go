package primary_test

import (
	"strings"
	"testing"

	"countdown/internal/modules/countdown/domain"
	"countdown/internal/ui/board"
	"countdown/internal/ui/theme"
	"countdown/internal/ui/views/primary"
)

func TestBigRendersFiveRows(t *testing.T) {
	t.Parallel()
	rows := strings.Split(primary.Big("07"), "\n")
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[0] != "███ ███" || rows[4] != "███   █" {
		t.Fatalf("unexpected glyph rows %q", rows)
	}
}

func TestUrgentOnlyInsideFinalMinute(t *testing.T) {
	t.Parallel()
	cases := []struct {
		b    domain.Breakdown
		want bool
	}{
		{domain.Breakdown{Seconds: 59}, true},
		{domain.Breakdown{Minutes: 1}, false},
		{domain.Breakdown{}, false},
		{domain.Breakdown{Days: 1, Seconds: 5}, false},
	}
	for _, tc := range cases {
		if got := primary.Urgent(tc.b); got != tc.want {
			t.Fatalf("Urgent(%+v) = %v, want %v", tc.b, got, tc.want)
		}
	}
}

func TestViewShowsNameAndLabels(t *testing.T) {
	t.Parallel()
	m := primary.New()
	m.SetWidth(100)
	out := m.View(board.Snapshot{
		PrimaryActive:   true,
		PrimaryName:     "Launch",
		Primary:         domain.Breakdown{Days: 1, Hours: 2, Minutes: 3, Seconds: 4},
		ElapsedFraction: 0.5,
	}, theme.Get(theme.Default))
	for _, want := range []string{"Launch", "DAYS", "SECONDS"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
	idle := m.View(board.Snapshot{}, theme.Get(theme.Default))
	if !strings.Contains(idle, "No countdown running") {
		t.Fatalf("expected idle hint, got %q", idle)
	}
}

func TestViewMarksPausedPrimary(t *testing.T) {
	t.Parallel()
	m := primary.New()
	m.SetWidth(100)
	snap := board.Snapshot{PrimaryActive: true, PrimaryName: "Tea", Primary: domain.Breakdown{Minutes: 4}}
	if strings.Contains(m.View(snap, theme.Get(theme.Default)), "PAUSED") {
		t.Fatalf("running timer must not show the paused mark")
	}
	snap.PrimaryPaused = true
	if !strings.Contains(m.View(snap, theme.Get(theme.Default)), "PAUSED") {
		t.Fatalf("expected paused mark")
	}
}
