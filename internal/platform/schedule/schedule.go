package schedule

import (
	"sync"
	"time"
)

// Cancel stops a scheduled task. Calling it more than once is safe.
type Cancel func()

// Scheduler runs repeating and one-shot tasks against the wall clock.
type Scheduler interface {
	Every(period time.Duration, fn func()) Cancel
	After(delay time.Duration, fn func()) Cancel
}

// Real drives tasks from time.Ticker and time.AfterFunc.
type Real struct{}

func (Real) Every(period time.Duration, fn func()) Cancel {
	ticker := time.NewTicker(period)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// A tick racing with cancel must not run.
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

func (Real) After(delay time.Duration, fn func()) Cancel {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}
