package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotInitialized))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vts", "config.json")

	cfg := Default()
	cfg.Host = "192.168.1.10"
	cfg.Port = 9001
	cfg.Token = "secret-token"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.10", loaded.Host)
	assert.Equal(t, 9001, loaded.Port)
	assert.Equal(t, "secret-token", loaded.Token)
	assert.Equal(t, cfg.PluginName, loaded.PluginName)
}

func TestSavePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, Save(path, Default()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, Save(path, Default()))

	t.Setenv("VTS_HOST", "otherhost")
	t.Setenv("VTS_PORT", "8123")
	t.Setenv("VTS_TOKEN", "env-token")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "otherhost", cfg.Host)
	assert.Equal(t, 8123, cfg.Port)
	assert.Equal(t, "env-token", cfg.Token)
}

func TestLoadFileIgnoresEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, Save(path, Default()))

	t.Setenv("VTS_HOST", "otherhost")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Host, cfg.Host)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}
