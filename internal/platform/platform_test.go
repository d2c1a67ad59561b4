package platform

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleInstance(t *testing.T) {
	name := "iqvision-test-" + t.Name()

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.Equal(t, instanceAddress(name), guard.Address())

	_, err = AcquireSingleInstance(name)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyRunning))

	require.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestInstanceAddressIsStableAndInRange(t *testing.T) {
	first := instanceAddress("IQVision")
	assert.Equal(t, first, instanceAddress("IQVision"))
	assert.True(t, strings.HasPrefix(first, "127.0.0.1:"))
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("config dir comes from %AppData% on windows")
	}
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("HOME", root)

	dir, err := ConfigDir("IQVision")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dir, string(filepath.Separator)+"IQVision"))
	assert.True(t, strings.HasPrefix(dir, root))
}
