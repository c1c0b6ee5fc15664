package domain

import (
	"fmt"
	"time"
)

const (
	TickPeriod       = time.Second
	UrgencyThreshold = time.Minute

	DefaultPrimaryName = "Countdown Timer"
)

type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeRemoved   Outcome = "removed"
	OutcomeReset     Outcome = "reset"
	OutcomeReplaced  Outcome = "replaced"
)

type Timer struct {
	ID         string
	Name       string
	TargetTime time.Time
	StartTime  time.Time
	IsPaused   bool
	Primary    bool
}

func (t Timer) Remaining(now time.Time) time.Duration {
	return t.TargetTime.Sub(now)
}

func (t Timer) Total() time.Duration {
	return t.TargetTime.Sub(t.StartTime)
}

// ElapsedFraction is the share of the total duration already spent, in [0,1].
func (t Timer) ElapsedFraction(now time.Time) float64 {
	total := t.Total()
	if total <= 0 {
		return 1
	}
	f := float64(now.Sub(t.StartTime)) / float64(total)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func (t Timer) BreakdownAt(now time.Time) Breakdown {
	return BreakdownOf(t.Remaining(now).Milliseconds())
}

// Urgent reports whether less than a minute is left on a still-running timer.
func (t Timer) Urgent(now time.Time) bool {
	r := t.Remaining(now)
	return r > 0 && r < UrgencyThreshold
}

// SecondaryName is the generated label for the n-th secondary timer.
func SecondaryName(n int) string {
	return fmt.Sprintf("Timer %d", n)
}

// PresetName is the generated label for a preset offset.
func PresetName(minutes int) string {
	return fmt.Sprintf("%d Minute Timer", minutes)
}

// Record is the journal entry written once a timer leaves the registry.
type Record struct {
	TimerID    string
	Name       string
	Primary    bool
	StartTime  time.Time
	TargetTime time.Time
	EndedAt    time.Time
	Outcome    Outcome
}

func NewRecord(t Timer, endedAt time.Time, outcome Outcome) Record {
	return Record{
		TimerID:    t.ID,
		Name:       t.Name,
		Primary:    t.Primary,
		StartTime:  t.StartTime,
		TargetTime: t.TargetTime,
		EndedAt:    endedAt,
		Outcome:    outcome,
	}
}
