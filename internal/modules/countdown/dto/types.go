package dto

import "time"

type StartInput struct {
	Target        string
	PresetMinutes int
	Name          string
}

type TimerOutput struct {
	ID         string
	Name       string
	TargetTime time.Time
	StartTime  time.Time
	Remaining  time.Duration
	IsPaused   bool
	Primary    bool
}

type PauseOutput struct {
	Found    bool
	TimerID  string
	IsPaused bool
}

type PresetOutput struct {
	Minutes int
	Name    string
}

type HistoryOutput struct {
	TimerID    string
	Name       string
	Primary    bool
	StartTime  time.Time
	TargetTime time.Time
	EndedAt    time.Time
	Outcome    string
}
