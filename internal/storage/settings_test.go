package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"iqvision/internal/core/model"
	"iqvision/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFileMissing(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveAndLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", settingsFileName)
	want := preferences.Settings{
		Interval:      model.IntervalMedium,
		Fullscreen:    false,
		SplashEnabled: false,
		SplashDelay:   2 * time.Second,
	}

	require.NoError(t, SaveSettingsFile(path, want))
	got, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettingsFileKeepsDefaultsForInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("interval_seconds: 1.25\nsplash_delay_seconds: 60\n"), 0o644))

	settings, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestLoadSettingsFileRejectsBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("interval_seconds: [\n"), 0o644))

	settings, err := LoadSettingsFile(path)
	require.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestApplyEnvOverrides(t *testing.T) {
	settings := preferences.DefaultSettings()
	err := ApplyEnvOverrides(&settings, map[string]string{
		"IQVISION_INTERVAL_SECONDS": "2",
		"IQVISION_FULLSCREEN":       "false",
		"IQVISION_SPLASH_DELAY":     "500ms",
	})
	require.NoError(t, err)

	assert.Equal(t, model.IntervalSlow, settings.Interval)
	assert.False(t, settings.Fullscreen)
	assert.True(t, settings.SplashEnabled)
	assert.Equal(t, 500*time.Millisecond, settings.SplashDelay)
}

func TestApplyEnvOverridesRejectsInterval(t *testing.T) {
	settings := preferences.DefaultSettings()
	err := ApplyEnvOverrides(&settings, map[string]string{"IQVISION_INTERVAL_SECONDS": "0.5"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidInterval))
	assert.Equal(t, model.IntervalFast, settings.Interval)
}

func TestApplyEnvOverridesEmptyEnvironment(t *testing.T) {
	settings := preferences.DefaultSettings()
	require.NoError(t, ApplyEnvOverrides(&settings, map[string]string{}))
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveAndLoadSettingsByAppName(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("HOME", root)
	for _, name := range []string{"IQVISION_INTERVAL_SECONDS", "IQVISION_FULLSCREEN", "IQVISION_SPLASH_ENABLED", "IQVISION_SPLASH_DELAY"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	settings := preferences.DefaultSettings()
	settings.Interval = model.IntervalSlow
	require.NoError(t, SaveSettings("IQVisionTest", settings))

	loaded, err := LoadSettings("IQVisionTest")
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestLoadSettingsAppliesEnvAfterBadYaml(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("HOME", root)
	path := filepath.Join(root, "IQVisionBroken", settingsFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("interval_seconds: [\n"), 0o644))

	settings, err := loadSettings("IQVisionBroken", map[string]string{"IQVISION_FULLSCREEN": "false"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.False(t, settings.Fullscreen)
	assert.Equal(t, model.IntervalFast, settings.Interval)
	assert.True(t, settings.SplashEnabled)
}

func TestApplyEnvOverridesRejectsSplashDelayOutOfRange(t *testing.T) {
	for _, value := range []string{"11s", "-1s"} {
		settings := preferences.DefaultSettings()
		err := ApplyEnvOverrides(&settings, map[string]string{"IQVISION_SPLASH_DELAY": value})

		require.Error(t, err, value)
		assert.Equal(t, preferences.DefaultSettings().SplashDelay, settings.SplashDelay, value)
	}

	settings := preferences.DefaultSettings()
	require.NoError(t, ApplyEnvOverrides(&settings, map[string]string{"IQVISION_SPLASH_DELAY": "10s"}))
	assert.Equal(t, 10*time.Second, settings.SplashDelay)
}
