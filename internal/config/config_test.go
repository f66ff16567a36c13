package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultThreads, cfg.Threads)
	assert.Equal(t, DefaultHashMB, cfg.HashMB)
	assert.False(t, cfg.Debug)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latrunculi.toml")
	require.NoError(t, os.WriteFile(path, []byte("threads = 4\nhash = 128\ndebug = true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Threads)
	assert.Equal(t, 128, cfg.HashMB)
	assert.True(t, cfg.Debug)
}

func TestLoadClampsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latrunculi.toml")
	require.NoError(t, os.WriteFile(path, []byte("threads = 9999\nhash = -5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, MaxThreads, cfg.Threads)
	assert.Equal(t, 1, cfg.HashMB)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latrunculi.toml")
	require.NoError(t, os.WriteFile(path, []byte("threads = [not toml"), 0o644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}
