package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/internal/config"
)

func TestNewPersistsAcrossRestarts(t *testing.T) {
	cfg := config.Default(t.TempDir())

	app, err := New(cfg)
	require.NoError(t, err)
	require.True(t, app.Persistent)
	app.Session.ToggleCompletion(5)
	app.Session.SetReflection(5, "noted")
	require.NoError(t, app.Close())

	app, err = New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	assert.True(t, app.Session.IsCompleted(5))
	assert.Equal(t, "noted", app.Session.Reflection(5))
	assert.Equal(t, 1, app.Session.CurrentDay())
}

func TestNewFallsBackToMemory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	cfg := config.Default(dir)
	cfg.DBPath = filepath.Join(blocker, "planner.db")
	cfg.LogPath = filepath.Join(dir, "planner.log")

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	assert.False(t, app.Persistent)

	app.Session.ToggleCompletion(2)
	assert.True(t, app.Session.IsCompleted(2))
	require.NoError(t, app.Logger.Sync())

	logs, err := os.ReadFile(cfg.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "storage unavailable")
}

func TestNewRejectsInvalidContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weeks: []\n"), 0o644))

	cfg := config.Default(dir)
	cfg.ContentPath = path

	_, err := New(cfg)
	assert.Error(t, err)
}
