package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaths(t *testing.T) {
	paths, err := GetPaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(paths.ExecutableDir, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(paths.DataDir, "seeds"), paths.SeedsDir)
	assert.Equal(t, filepath.Join(paths.ExecutableDir, "logs"), paths.LogsDir)
	assert.Equal(t, filepath.Join(paths.SeedsDir, "football_combine_data_combined.csv"), paths.CombineCSV)
	assert.Equal(t, filepath.Join(paths.SeedsDir, "athletes_data.json"), paths.AthletesJSON)
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	paths := &Paths{
		ExecutableDir: dir,
		DataDir:       filepath.Join(dir, "data"),
		SeedsDir:      filepath.Join(dir, "data", "seeds"),
		LogsDir:       filepath.Join(dir, "logs"),
	}

	require.NoError(t, paths.EnsureDirectories())

	for _, d := range []string{paths.DataDir, paths.SeedsDir, paths.LogsDir} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent on existing directories.
	assert.NoError(t, paths.EnsureDirectories())
}

func TestGetLogPath(t *testing.T) {
	paths := &Paths{LogsDir: "/srv/app/logs"}
	assert.Equal(t, filepath.Join("/srv/app/logs", "importer.log"), paths.GetLogPath("importer.log"))
}

func TestGetSeedPath(t *testing.T) {
	paths := &Paths{SeedsDir: "/srv/app/data/seeds"}
	assert.Equal(t, filepath.Join("/srv/app/data/seeds", "combine.csv"), paths.GetSeedPath("combine.csv"))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "absent.csv")))
	assert.False(t, FileExists(dir)) // directories are not regular files
}
