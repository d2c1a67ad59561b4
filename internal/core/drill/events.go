package drill

import (
	"image/color"
	"time"
)

// Mode represents the active drill.
type Mode string

const (
	ModeIdle   Mode = "idle"
	ModeNumber Mode = "number"
	ModeColor  Mode = "color"
)

// EventType defines the type of controller event.
type EventType string

const (
	EventModeChange     EventType = "mode_change"
	EventTick           EventType = "tick"
	EventIntervalChange EventType = "interval_change"
)

// State is a snapshot of the drill session.
type State struct {
	Mode      Mode
	Number    int
	Color     color.NRGBA
	ColorName string
	Interval  time.Duration
}

// NumberActive reports whether the number drill is running.
func (state State) NumberActive() bool {
	return state.Mode == ModeNumber
}

// ColorActive reports whether the color drill is running.
func (state State) ColorActive() bool {
	return state.Mode == ModeColor
}

// Event represents a controller update for observers.
type Event struct {
	Type     EventType
	State    State
	Previous Mode
	At       time.Time
}
