package splash

import (
	"sync"
	"time"

	"iqvision/internal/core/drill"
)

// DefaultDelay is how long the loading view stays up.
const DefaultDelay = 3 * time.Second

// Gate opens once after a fixed delay.
type Gate struct {
	mu        sync.Mutex
	clock     drill.Clock
	delay     time.Duration
	timer     drill.Timer
	started   bool
	opened    bool
	cancelled bool
}

// NewGate creates a gate driven by clock. A nil clock uses the system clock.
func NewGate(clock drill.Clock, delay time.Duration) *Gate {
	if clock == nil {
		clock = drill.SystemClock
	}
	if delay < 0 {
		delay = 0
	}
	return &Gate{clock: clock, delay: delay}
}

// Start schedules onOpen. A zero delay opens immediately. Only the first call has an effect.
func (gate *Gate) Start(onOpen func()) {
	gate.mu.Lock()
	if gate.started || gate.cancelled {
		gate.mu.Unlock()
		return
	}
	gate.started = true
	if gate.delay == 0 {
		gate.opened = true
		gate.mu.Unlock()
		onOpen()
		return
	}
	gate.timer = gate.clock.AfterFunc(gate.delay, func() {
		gate.open(onOpen)
	})
	gate.mu.Unlock()
}

// Cancel prevents a pending open.
func (gate *Gate) Cancel() {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	gate.cancelled = true
	if gate.timer != nil {
		gate.timer.Stop()
		gate.timer = nil
	}
}

// Opened reports whether the gate has opened.
func (gate *Gate) Opened() bool {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	return gate.opened
}

func (gate *Gate) open(onOpen func()) {
	gate.mu.Lock()
	if gate.opened || gate.cancelled {
		gate.mu.Unlock()
		return
	}
	gate.opened = true
	gate.timer = nil
	gate.mu.Unlock()

	onOpen()
}
