package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"iqvision/internal/core/model"
	"iqvision/internal/platform"
	"iqvision/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const (
	settingsFileName      = "settings.yaml"
	maxSplashDelaySeconds = 10
)

type yamlSettings struct {
	IntervalSeconds    float64  `yaml:"interval_seconds"`
	Fullscreen         *bool    `yaml:"fullscreen,omitempty"`
	SplashEnabled      *bool    `yaml:"splash_enabled,omitempty"`
	SplashDelaySeconds *float64 `yaml:"splash_delay_seconds,omitempty"`
}

// LoadSettings reads user preferences from YAML and applies environment overrides.
// If the config file does not exist, default settings are returned. Environment
// overrides are applied even when the file cannot be read or parsed.
func LoadSettings(appName string) (preferences.Settings, error) {
	return loadSettings(appName, nil)
}

func loadSettings(appName string, environment map[string]string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	var fileErr error
	if configPath, err := resolveConfigPath(appName); err != nil {
		fileErr = err
	} else {
		settings, fileErr = LoadSettingsFile(configPath)
	}
	envErr := ApplyEnvOverrides(&settings, environment)
	return settings, errors.Join(fileErr, envErr)
}

// LoadSettingsFile reads preferences from the given path.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes preferences to the given path.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fullscreen := settings.Fullscreen
	splashEnabled := settings.SplashEnabled
	splashDelay := settings.SplashDelay.Seconds()
	fileData := yamlSettings{
		IntervalSeconds:    settings.Interval.Seconds(),
		Fullscreen:         &fullscreen,
		SplashEnabled:      &splashEnabled,
		SplashDelaySeconds: &splashDelay,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir(appName)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return filepath.Join(configDir, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if interval, err := model.ParseInterval(fileData.IntervalSeconds); err == nil {
		settings.Interval = interval
	}
	if delay := fileData.SplashDelaySeconds; delay != nil && *delay >= 0 && *delay <= maxSplashDelaySeconds {
		settings.SplashDelay = time.Duration(*delay * float64(time.Second))
	}
	if fileData.Fullscreen != nil {
		settings.Fullscreen = *fileData.Fullscreen
	}
	if fileData.SplashEnabled != nil {
		settings.SplashEnabled = *fileData.SplashEnabled
	}
}
