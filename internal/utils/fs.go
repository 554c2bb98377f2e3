package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates the directory if it doesn't exist yet.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// ExecutableDir returns the directory holding the current binary, the last
// fallback location for config when no home directory is available.
func ExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}

// DirWritable reports whether the directory exists (creating it if needed)
// and accepts writes.
func DirWritable(path string) bool {
	if err := os.MkdirAll(path, 0755); err != nil {
		log.Warnf("cannot create directory %s: %v", path, err)
		return false
	}
	probe := filepath.Join(path, ".write_test")
	f, err := os.Create(probe)
	if err != nil {
		log.Warnf("cannot write to directory %s: %v", path, err)
		return false
	}
	f.Close()
	os.Remove(probe)
	return true
}
