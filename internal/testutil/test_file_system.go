package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"abifix/internal/adapters/filesystem"
	"abifix/internal/ports"
)

var _ ports.FileSystem = (*TestFileSystem)(nil)

// TestFileSystem provides real file system operations sandboxed within a temporary directory.
// All paths are automatically resolved relative to the sandbox directory.
// Use this in tests that need to actually read/write files.
// For unit tests that mock file system calls, use MockFileSystem instead.
type TestFileSystem struct {
	baseDir string
}

// NewTestFileSystem creates a sandboxed file system within a temporary directory.
// The directory is automatically cleaned up when the test completes.
func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	baseDir := t.TempDir()
	return &TestFileSystem{baseDir: baseDir}
}

// BaseDir returns the sandbox base directory path.
// Use this when you need to construct paths or verify file locations.
func (f *TestFileSystem) BaseDir() string {
	return f.baseDir
}

// Path returns the real location of a sandboxed path
func (f *TestFileSystem) Path(path string) string {
	return f.resolvePath(path)
}

// Seed writes content to a sandboxed path, creating parent directories.
func (f *TestFileSystem) Seed(t *testing.T, path string, content string) {
	t.Helper()
	if err := f.WriteFile(path, []byte(content), ports.ReadAllWriteOwner); err != nil {
		t.Fatalf("failed to seed %s: %v", path, err)
	}
}

// Mkdir creates a sandboxed directory and its parents.
func (f *TestFileSystem) Mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(f.resolvePath(path), 0700); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

// Content reads a sandboxed file and fails the test if it cannot.
func (f *TestFileSystem) Content(t *testing.T, path string) string {
	t.Helper()
	data, err := f.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// resolvePath converts a path to be relative to the sandbox directory.
// Absolute paths are joined with the base directory.
// Relative paths are also joined with the base directory.
func (f *TestFileSystem) resolvePath(path string) string {
	cleanPath := filepath.Clean(path)
	cleanPath = cleanPath[len(filepath.VolumeName(cleanPath)):]
	return filepath.Join(f.baseDir, cleanPath)
}

func (f *TestFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.resolvePath(path))
}

func (f *TestFileSystem) WriteFile(path string, content []byte, _ ports.AccessMode) error {
	resolved := f.resolvePath(path)
	// Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(resolved), 0700); err != nil {
		return err
	}
	return os.WriteFile(resolved, content, 0600)
}

func (f *TestFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(f.resolvePath(path))
	if err == nil {
		return true, nil
	}
	if filesystem.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (f *TestFileSystem) DirExists(path string) (bool, error) {
	info, err := os.Stat(f.resolvePath(path))
	if err == nil {
		return info.IsDir(), nil
	}
	if filesystem.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
