package drill

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
	"time"

	"iqvision/internal/core/model"
)

// ErrInvalidInterval indicates a cadence outside the allowed set.
var ErrInvalidInterval = model.ErrInvalidInterval

// ErrStopped indicates the controller has been stopped.
var ErrStopped = errors.New("drill controller stopped")

// Config contains runtime options for Controller.
type Config struct {
	Clock  Clock
	Random Source
}

// Controller is a state machine that runs the number and color drills.
//
// Observers are invoked with the controller locked, in mutation order. They
// receive the new state in the event and must not call back into the
// controller.
type Controller struct {
	mu           sync.Mutex
	config       model.DrillConfig
	options      Config
	mode         Mode
	number       int
	color        color.NRGBA
	colorName    string
	interval     time.Duration
	cycle        *cycle
	observers    []observer
	nextObserver uint64
	events       []chan Event
	stopped      bool
}

// cycle identifies one run of repeating ticks. A tick whose cycle is no
// longer current is discarded.
type cycle struct {
	mode  Mode
	timer Timer
}

type observer struct {
	id     uint64
	notify func(Event)
}

// New creates a Controller in the idle state.
func New(config model.DrillConfig, options Config) *Controller {
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	if options.Random == nil {
		options.Random = NewSource()
	}
	if !model.ValidInterval(config.Interval) {
		config.Interval = model.IntervalFast
	}
	if config.NumberMin <= 0 || config.NumberMax < config.NumberMin {
		config.NumberMin = 1
		config.NumberMax = 99
	}
	if len(config.Palette) == 0 {
		config.Palette = model.DefaultPalette()
	} else {
		config.Palette = append([]model.Swatch(nil), config.Palette...)
	}

	return &Controller{
		config:   config,
		options:  options,
		mode:     ModeIdle,
		interval: config.Interval,
	}
}

// Observe registers a synchronous observer. The returned function removes it.
func (controller *Controller) Observe(notify func(Event)) func() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.nextObserver++
	id := controller.nextObserver
	controller.observers = append(controller.observers, observer{id: id, notify: notify})

	return func() {
		controller.mu.Lock()
		defer controller.mu.Unlock()
		for index, registered := range controller.observers {
			if registered.id == id {
				controller.observers = append(controller.observers[:index], controller.observers[index+1:]...)
				return
			}
		}
	}
}

// Subscribe registers a new observer channel. Events are dropped when the channel is full.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.stopped {
		close(ch)
		return ch
	}
	controller.events = append(controller.events, ch)
	return ch
}

// State returns a snapshot of the session.
func (controller *Controller) State() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.stateLocked()
}

// ToggleNumberDrill starts or stops the number drill, stopping the color drill first.
func (controller *Controller) ToggleNumberDrill() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.stopped {
		return
	}

	previous := controller.mode
	switch previous {
	case ModeColor:
		controller.stopCycleLocked()
		controller.colorName = ""
	case ModeNumber:
		controller.stopCycleLocked()
		controller.number = 0
		controller.mode = ModeIdle
		controller.emitLocked(EventModeChange, previous)
		return
	}

	controller.mode = ModeNumber
	controller.startCycleLocked()
	controller.emitLocked(EventModeChange, previous)
}

// ToggleColorDrill starts or stops the color drill, stopping the number drill first.
// Stopping clears the color name but keeps the last ink.
func (controller *Controller) ToggleColorDrill() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.stopped {
		return
	}

	previous := controller.mode
	switch previous {
	case ModeNumber:
		controller.stopCycleLocked()
		controller.number = 0
	case ModeColor:
		controller.stopCycleLocked()
		controller.colorName = ""
		controller.mode = ModeIdle
		controller.emitLocked(EventModeChange, previous)
		return
	}

	controller.mode = ModeColor
	controller.startCycleLocked()
	controller.emitLocked(EventModeChange, previous)
}

// SetInterval changes the cadence. A running drill is rescheduled without an
// immediate draw.
func (controller *Controller) SetInterval(interval time.Duration) error {
	if !model.ValidInterval(interval) {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}

	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.stopped {
		return ErrStopped
	}

	controller.interval = interval
	if controller.cycle != nil {
		controller.stopCycleLocked()
		controller.startCycleLocked()
	}
	controller.emitLocked(EventIntervalChange, controller.mode)
	return nil
}

// Stop cancels any running drill and closes subscriptions. Later calls are no-ops.
func (controller *Controller) Stop() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.stopped {
		return
	}
	controller.stopped = true
	controller.stopCycleLocked()

	events := controller.events
	controller.events = nil
	controller.observers = nil
	for _, ch := range events {
		close(ch)
	}
}

func (controller *Controller) startCycleLocked() {
	current := &cycle{mode: controller.mode}
	controller.cycle = current
	controller.scheduleLocked(current)
}

func (controller *Controller) scheduleLocked(current *cycle) {
	current.timer = controller.options.Clock.AfterFunc(controller.interval, func() {
		controller.tick(current)
	})
}

func (controller *Controller) stopCycleLocked() {
	if controller.cycle == nil {
		return
	}
	controller.cycle.timer.Stop()
	controller.cycle = nil
}

func (controller *Controller) tick(current *cycle) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.stopped || controller.cycle != current {
		return
	}

	switch current.mode {
	case ModeNumber:
		controller.number = controller.drawNumberLocked()
	case ModeColor:
		swatch := controller.drawSwatchLocked()
		controller.color = swatch.Ink
		controller.colorName = swatch.Name
	}

	controller.scheduleLocked(current)
	controller.emitLocked(EventTick, current.mode)
}

func (controller *Controller) drawNumberLocked() int {
	span := controller.config.NumberMax - controller.config.NumberMin + 1
	return controller.config.NumberMin + controller.options.Random.IntN(span)
}

// drawSwatchLocked picks uniformly among palette entries whose name differs
// from the one currently shown. Termination needs a palette of at least two
// distinct names; otherwise the fallback swatch alternates with the palette.
func (controller *Controller) drawSwatchLocked() model.Swatch {
	candidates := make([]model.Swatch, 0, len(controller.config.Palette))
	for _, swatch := range controller.config.Palette {
		if swatch.Name != controller.colorName {
			candidates = append(candidates, swatch)
		}
	}
	if len(candidates) == 0 {
		return model.FallbackSwatch
	}
	return candidates[controller.options.Random.IntN(len(candidates))]
}

func (controller *Controller) stateLocked() State {
	return State{
		Mode:      controller.mode,
		Number:    controller.number,
		Color:     controller.color,
		ColorName: controller.colorName,
		Interval:  controller.interval,
	}
}

func (controller *Controller) emitLocked(eventType EventType, previous Mode) {
	event := Event{
		Type:     eventType,
		State:    controller.stateLocked(),
		Previous: previous,
		At:       controller.options.Clock.Now(),
	}
	for _, registered := range controller.observers {
		registered.notify(event)
	}
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
