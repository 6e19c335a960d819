package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFileReturnsDefaults(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "cza", "config.toml"))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, store.Exists())
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "cza", "config.toml"))

	cfg := DefaultConfig()
	cfg.User.Author = "Test Author"
	cfg.User.Email = "test@example.com"
	cfg.User.GitInit = false
	cfg.PostGeneration.OpenEditor = "code"

	require.NoError(t, store.Save(cfg))
	assert.True(t, store.Exists())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Test Author", loaded.User.Author)
	assert.Equal(t, "test@example.com", loaded.User.Email)
	assert.False(t, loaded.User.GitInit)
	assert.Equal(t, "code", loaded.PostGeneration.OpenEditor)
	// Untouched fields keep their defaults.
	assert.True(t, loaded.Development.Color)
}

func TestStore_LoadCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[user\nauthor ="), 0o644))

	store := NewStoreAt(path)
	_, err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestStore_SparseFileGetsDefaults(t *testing.T) {
	// A file that only sets one key must still yield a total document.
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[user]\nauthor = \"Ada\"\n"), 0o644))

	cfg, err := NewStoreAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "Ada", cfg.User.Author)
	assert.True(t, cfg.User.GitInit)
	assert.True(t, cfg.PostGeneration.AutoInstallDeps)
}

func TestStore_PathFromEnv(t *testing.T) {
	t.Setenv(envConfigFile, "/custom/cza.toml")

	assert.Equal(t, "/custom/cza.toml", NewStore().Path())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/projects")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "projects"), got)

	got, err = ExpandPath("/absolute/path")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path", got)

	got, err = ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)
}
