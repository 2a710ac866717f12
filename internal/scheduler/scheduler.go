// Package scheduler abstracts the recurring timers used for retention
// sweeps and session purges, so tests can invoke the swept function
// directly instead of waiting on wall-clock time.
package scheduler

import (
	"sync"
	"time"
)

// Scheduler runs a function repeatedly at a fixed interval.
type Scheduler interface {
	// ScheduleRecurring starts running fn every interval and returns a stop
	// function. Stopping is idempotent.
	ScheduleRecurring(interval time.Duration, fn func()) (stop func())
}

// Ticker is the production Scheduler, backed by time.Ticker.
type Ticker struct{}

func New() *Ticker {
	return &Ticker{}
}

func (*Ticker) ScheduleRecurring(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
