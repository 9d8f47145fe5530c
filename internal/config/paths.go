package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all application file locations.
// This is the single source of truth for file paths: everything resolves
// relative to the executable directory, never the working directory.
type Paths struct {
	ExecutableDir string
	DataDir       string
	SeedsDir      string
	LogsDir       string

	// Well-known data files
	CombineCSV   string
	AthletesJSON string
}

// GetPaths returns the application paths relative to the executable location.
//
// Directory structure:
//
//	<exe dir>/
//	  ├── data/
//	  │   └── seeds/   (combine CSV input, athletes JSON output)
//	  └── logs/        (application logs)
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}
	exeDir := filepath.Dir(exe)

	dataDir := filepath.Join(exeDir, "data")
	seedsDir := filepath.Join(dataDir, "seeds")

	return &Paths{
		ExecutableDir: exeDir,
		DataDir:       dataDir,
		SeedsDir:      seedsDir,
		LogsDir:       filepath.Join(exeDir, "logs"),

		CombineCSV:   filepath.Join(seedsDir, "football_combine_data_combined.csv"),
		AthletesJSON: filepath.Join(seedsDir, "athletes_data.json"),
	}, nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.DataDir, p.SeedsDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLogPath returns the path for a named log file inside the logs directory
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetSeedPath returns the path for a named file inside the seeds directory
func (p *Paths) GetSeedPath(filename string) string {
	return filepath.Join(p.SeedsDir, filename)
}

// FileExists reports whether the given path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
