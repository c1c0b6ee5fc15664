package out_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	countdownout "countdown/internal/modules/countdown/adapter/out"
	"countdown/internal/modules/countdown/domain"
)

func TestSQLiteJournalAppendAndRecent(t *testing.T) {
	t.Parallel()
	journal, err := countdownout.NewSQLiteJournal(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("new journal: %v", err)
	}
	start := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	records := []domain.Record{
		{TimerID: "1", Name: "Tea", Primary: true, StartTime: start, TargetTime: start.Add(3 * time.Minute), EndedAt: start.Add(3 * time.Minute), Outcome: domain.OutcomeCompleted},
		{TimerID: "2", Name: "Timer 1", StartTime: start, TargetTime: start.Add(time.Hour), EndedAt: start.Add(10*time.Minute + 250*time.Millisecond), Outcome: domain.OutcomeRemoved},
		{TimerID: "3", Name: "Focus", Primary: true, StartTime: start, TargetTime: start.Add(25 * time.Minute), EndedAt: start.Add(time.Minute), Outcome: domain.OutcomeReset},
	}
	for _, rec := range records {
		if err := journal.Append(context.Background(), rec); err != nil {
			t.Fatalf("append %s: %v", rec.TimerID, err)
		}
	}

	got, err := journal.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 || got[0].TimerID != "3" || got[1].TimerID != "2" {
		t.Fatalf("expected newest first, got %+v", got)
	}
	if got[1].Primary || got[1].Outcome != domain.OutcomeRemoved || !got[1].EndedAt.Equal(records[1].EndedAt) {
		t.Fatalf("record did not survive the round trip: %+v", got[1])
	}
	if !got[0].Primary || got[0].Name != "Focus" {
		t.Fatalf("unexpected newest record %+v", got[0])
	}
}

func TestSQLiteJournalConcurrentAppends(t *testing.T) {
	t.Parallel()
	journal, err := countdownout.NewSQLiteJournal(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("new journal: %v", err)
	}
	start := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	const n = 40
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- journal.Append(context.Background(), domain.Record{
				TimerID:    fmt.Sprintf("t%d", i),
				Name:       fmt.Sprintf("Timer %d", i),
				StartTime:  start,
				TargetTime: start.Add(time.Minute),
				EndedAt:    start.Add(time.Minute),
				Outcome:    domain.OutcomeCompleted,
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent append failed: %v", err)
		}
	}

	got, err := journal.Recent(context.Background(), 2*n)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != n {
		t.Fatalf("expected %d stored records, got %d", n, len(got))
	}
}
