// Package drilltest provides a manually advanced clock for tests of code
// driven by a drill.Clock.
package drilltest

import (
	"sync"
	"time"

	"iqvision/internal/core/drill"
)

// ManualClock fires scheduled callbacks only when advanced.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	clock *ManualClock
	at    time.Time
	seq   uint64
	run   func()
}

// NewManualClock creates a clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (clock *ManualClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

// AfterFunc schedules f to run once the clock has been advanced by d.
func (clock *ManualClock) AfterFunc(d time.Duration, f func()) drill.Timer {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.seq++
	timer := &manualTimer{clock: clock, at: clock.now.Add(d), seq: clock.seq, run: f}
	clock.timers = append(clock.timers, timer)
	return timer
}

// Advance moves time forward, running due callbacks in deadline order.
// Callbacks scheduled while advancing run too if they fall due.
func (clock *ManualClock) Advance(d time.Duration) {
	clock.mu.Lock()
	target := clock.now.Add(d)
	clock.mu.Unlock()

	for {
		clock.mu.Lock()
		next := clock.popDueLocked(target)
		if next == nil {
			clock.now = target
			clock.mu.Unlock()
			return
		}
		clock.now = next.at
		clock.mu.Unlock()

		next.run()
	}
}

// Pending returns the number of scheduled callbacks that have not fired or been stopped.
func (clock *ManualClock) Pending() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return len(clock.timers)
}

func (clock *ManualClock) popDueLocked(target time.Time) *manualTimer {
	index := -1
	for candidate, timer := range clock.timers {
		if timer.at.After(target) {
			continue
		}
		if index < 0 || timer.at.Before(clock.timers[index].at) ||
			(timer.at.Equal(clock.timers[index].at) && timer.seq < clock.timers[index].seq) {
			index = candidate
		}
	}
	if index < 0 {
		return nil
	}
	timer := clock.timers[index]
	clock.timers = append(clock.timers[:index], clock.timers[index+1:]...)
	return timer
}

func (timer *manualTimer) Stop() bool {
	clock := timer.clock
	clock.mu.Lock()
	defer clock.mu.Unlock()
	for index, pending := range clock.timers {
		if pending == timer {
			clock.timers = append(clock.timers[:index], clock.timers[index+1:]...)
			return true
		}
	}
	return false
}
