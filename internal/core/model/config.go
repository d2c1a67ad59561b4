package model

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"
)

// ErrInvalidInterval indicates a cadence outside the allowed set.
var ErrInvalidInterval = errors.New("invalid drill interval")

// Allowed drill cadences.
const (
	IntervalFast   = time.Second
	IntervalMedium = 1500 * time.Millisecond
	IntervalSlow   = 2 * time.Second
)

// Intervals lists the allowed cadences in ascending order.
var Intervals = []time.Duration{IntervalFast, IntervalMedium, IntervalSlow}

// Swatch pairs the ink a color name is painted with and the name itself.
type Swatch struct {
	Ink  color.NRGBA
	Name string
}

// FallbackSwatch is used when no palette entry is eligible for a draw.
var FallbackSwatch = Swatch{Ink: color.NRGBA{A: 255}, Name: "Black"}

// DefaultPalette returns the six drill swatches. Names intentionally differ from their ink.
func DefaultPalette() []Swatch {
	return []Swatch{
		{Ink: color.NRGBA{R: 255, G: 59, B: 48, A: 255}, Name: "Blue"},
		{Ink: color.NRGBA{R: 255, G: 149, B: 0, A: 255}, Name: "Green"},
		{Ink: color.NRGBA{R: 255, G: 204, B: 0, A: 255}, Name: "Red"},
		{Ink: color.NRGBA{R: 52, G: 199, B: 89, A: 255}, Name: "Purple"},
		{Ink: color.NRGBA{R: 0, G: 122, B: 255, A: 255}, Name: "Yellow"},
		{Ink: color.NRGBA{R: 175, G: 82, B: 222, A: 255}, Name: "Orange"},
	}
}

// DrillConfig contains runtime settings for the drill controller.
type DrillConfig struct {
	Interval  time.Duration
	NumberMin int
	NumberMax int
	Palette   []Swatch
}

// DefaultDrillConfig returns the stock configuration.
func DefaultDrillConfig() DrillConfig {
	return DrillConfig{
		Interval:  IntervalFast,
		NumberMin: 1,
		NumberMax: 99,
		Palette:   DefaultPalette(),
	}
}

// ValidInterval reports whether the duration is one of the allowed cadences.
func ValidInterval(interval time.Duration) bool {
	for _, allowed := range Intervals {
		if interval == allowed {
			return true
		}
	}
	return false
}

// ParseInterval converts seconds into an allowed cadence.
func ParseInterval(seconds float64) (time.Duration, error) {
	interval := time.Duration(math.Round(seconds*1000)) * time.Millisecond
	if !ValidInterval(interval) {
		return 0, fmt.Errorf("%w: %gs", ErrInvalidInterval, seconds)
	}
	return interval, nil
}

// SnapInterval returns the allowed cadence nearest to the given seconds.
func SnapInterval(seconds float64) time.Duration {
	best := Intervals[0]
	bestDistance := math.Inf(1)
	for _, allowed := range Intervals {
		distance := math.Abs(allowed.Seconds() - seconds)
		if distance < bestDistance {
			best = allowed
			bestDistance = distance
		}
	}
	return best
}
