package storage

import (
	"fmt"
	"time"

	"iqvision/internal/core/model"
	"iqvision/internal/ui/preferences"

	"github.com/caarlos0/env/v11"
)

type envSettings struct {
	IntervalSeconds *float64       `env:"IQVISION_INTERVAL_SECONDS"`
	Fullscreen      *bool          `env:"IQVISION_FULLSCREEN"`
	SplashEnabled   *bool          `env:"IQVISION_SPLASH_ENABLED"`
	SplashDelay     *time.Duration `env:"IQVISION_SPLASH_DELAY"`
}

// ApplyEnvOverrides overlays IQVISION_* variables on settings.
// A nil environment reads the process environment.
func ApplyEnvOverrides(settings *preferences.Settings, environment map[string]string) error {
	var overrides envSettings
	if err := env.ParseWithOptions(&overrides, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if overrides.IntervalSeconds != nil {
		interval, err := model.ParseInterval(*overrides.IntervalSeconds)
		if err != nil {
			return fmt.Errorf("IQVISION_INTERVAL_SECONDS: %w", err)
		}
		settings.Interval = interval
	}
	if overrides.Fullscreen != nil {
		settings.Fullscreen = *overrides.Fullscreen
	}
	if overrides.SplashEnabled != nil {
		settings.SplashEnabled = *overrides.SplashEnabled
	}
	if overrides.SplashDelay != nil {
		delay := *overrides.SplashDelay
		if delay < 0 || delay > maxSplashDelaySeconds*time.Second {
			return fmt.Errorf("IQVISION_SPLASH_DELAY: %s outside 0s..%ds", delay, maxSplashDelaySeconds)
		}
		settings.SplashDelay = delay
	}
	return nil
}
