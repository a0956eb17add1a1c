package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := NewState()

	assert.Equal(t, 1, s.Version)
	assert.NotEmpty(t, s.InstallID)
	assert.False(t, s.HasTheme())
	assert.NotEqual(t, s.InstallID, NewState().InstallID)
}

func TestState_Theme(t *testing.T) {
	s := NewState()

	s.SetDark(true)
	assert.True(t, s.HasTheme())
	assert.True(t, s.IsDark())

	s.SetDark(false)
	assert.True(t, s.HasTheme())
	assert.False(t, s.IsDark())
}

func TestStorage_LoadMissingFile(t *testing.T) {
	storage := NewStorageWithPath(filepath.Join(t.TempDir(), "state.yaml"))

	require.NoError(t, storage.Load())
	assert.NotEmpty(t, storage.InstallID())
	_, ok := storage.Theme()
	assert.False(t, ok)
}

func TestStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.yaml")
	storage := NewStorageWithPath(path)
	require.NoError(t, storage.Load())

	require.NoError(t, storage.SetDarkMode(true))
	require.NoError(t, storage.SetLastRoute("/works"))
	require.NoError(t, storage.RecordVisit())
	require.NoError(t, storage.ReplaceRepoCache([]*CachedRepo{
		{FullName: "owner/site", URL: "https://github.com/owner/site", Stars: 3},
	}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reloaded := NewStorageWithPath(path)
	require.NoError(t, reloaded.Load())

	dark, ok := reloaded.Theme()
	assert.True(t, ok)
	assert.True(t, dark)
	assert.Equal(t, "/works", reloaded.LastRoute())
	assert.Equal(t, storage.InstallID(), reloaded.InstallID())
	assert.Equal(t, 1, reloaded.State().Visits)

	repos := reloaded.GetRepoCache()
	require.Len(t, repos, 1)
	assert.Equal(t, "owner/site", repos[0].FullName)
	assert.False(t, reloaded.CachedAt().IsZero())

	st := reloaded.State()
	assert.NotNil(t, st.GetCachedRepo("owner/site"))
}

func TestStorage_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [nope"), 0600))

	err := NewStorageWithPath(path).Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse state file")
}

func TestStorage_LoadMigratesMissingInstallID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 0\ntheme: dark\n"), 0600))

	storage := NewStorageWithPath(path)
	require.NoError(t, storage.Load())

	assert.Equal(t, 1, storage.State().Version)
	assert.NotEmpty(t, storage.InstallID())
	dark, ok := storage.Theme()
	assert.True(t, ok)
	assert.True(t, dark)
}
