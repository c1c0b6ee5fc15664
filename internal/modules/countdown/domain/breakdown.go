package domain

import "fmt"

const (
	msPerDay    = 86400000
	msPerHour   = 3600000
	msPerMinute = 60000
	msPerSecond = 1000
)

// Breakdown is a duration split into display fields. Sub-second remainder is dropped.
type Breakdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// BreakdownOf decomposes a millisecond duration. Negative input is treated as zero.
func BreakdownOf(ms int64) Breakdown {
	if ms < 0 {
		ms = 0
	}
	return Breakdown{
		Days:    ms / msPerDay,
		Hours:   ms % msPerDay / msPerHour,
		Minutes: ms % msPerHour / msPerMinute,
		Seconds: ms % msPerMinute / msPerSecond,
	}
}

func (b Breakdown) Millis() int64 {
	return b.Days*msPerDay + b.Hours*msPerHour + b.Minutes*msPerMinute + b.Seconds*msPerSecond
}

func (b Breakdown) IsZero() bool {
	return b == Breakdown{}
}

// String is the compact form used by mini displays.
func (b Breakdown) String() string {
	return fmt.Sprintf("%dd %dh %dm %ds", b.Days, b.Hours, b.Minutes, b.Seconds)
}

// Digits is the zero-padded form used by the main display.
func (b Breakdown) Digits() [4]string {
	return [4]string{
		fmt.Sprintf("%02d", b.Days),
		fmt.Sprintf("%02d", b.Hours),
		fmt.Sprintf("%02d", b.Minutes),
		fmt.Sprintf("%02d", b.Seconds),
	}
}
