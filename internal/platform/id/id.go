package id

import (
	"strconv"
	"sync"

	"countdown/internal/platform/clock"
)

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// Timestamp issues creation-time millisecond ids. Two ids requested within
// the same millisecond are bumped so every id from one generator is unique.
type Timestamp struct {
	clock clock.Clock

	mu   sync.Mutex
	last int64
}

func NewTimestamp(clk clock.Clock) *Timestamp {
	return &Timestamp{clock: clk}
}

func (t *Timestamp) New() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	v := t.clock.Now().UnixMilli()
	if v <= t.last {
		v = t.last + 1
	}
	t.last = v
	return strconv.FormatInt(v, 10)
}
