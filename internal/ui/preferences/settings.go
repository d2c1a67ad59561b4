package preferences

import (
	"time"

	"iqvision/internal/core/model"
)

// Settings defines launch preferences. Drill state itself is never saved.
type Settings struct {
	Interval      time.Duration
	Fullscreen    bool
	SplashEnabled bool
	SplashDelay   time.Duration
}

// DefaultSettings returns default settings for IQVision.
func DefaultSettings() Settings {
	return Settings{
		Interval:      model.IntervalFast,
		Fullscreen:    true,
		SplashEnabled: true,
		SplashDelay:   3 * time.Second,
	}
}

// DrillConfig converts settings to the controller configuration.
func (settings Settings) DrillConfig() model.DrillConfig {
	config := model.DefaultDrillConfig()
	if model.ValidInterval(settings.Interval) {
		config.Interval = settings.Interval
	}
	return config
}

// EffectiveSplashDelay returns zero when the splash is disabled.
func (settings Settings) EffectiveSplashDelay() time.Duration {
	if !settings.SplashEnabled || settings.SplashDelay < 0 {
		return 0
	}
	return settings.SplashDelay
}
