package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"abifix/internal/ports"
)

var _ ports.FileSystem = (*OsFileSystem)(nil)

type OsFileSystem struct{}

func ProvideOsFileSystem() *OsFileSystem {
	return &OsFileSystem{}
}

func (f *OsFileSystem) ReadFile(path string) ([]byte, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	return os.ReadFile(path)
}

// WriteFile truncates and rewrites path in place. Existing files keep their permissions.
func (f *OsFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}

	if err := ensureParentExists(path); err != nil {
		return err
	}

	if err := os.WriteFile(path, content, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (f *OsFileSystem) FileExists(path string) (bool, error) {
	info, err := stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to check if file exists: %w", err)
	}
	return info != nil, nil
}

func (f *OsFileSystem) DirExists(path string) (bool, error) {
	info, err := stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to check if directory exists: %w", err)
	}
	return info != nil && info.IsDir(), nil
}

// stat returns nil info and nil error when nothing exists at path, including when a
// parent component is a regular file.
func stat(path string) (os.FileInfo, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err == nil {
		return info, nil
	}
	if IsNotExist(err) {
		return nil, nil
	}
	return nil, err
}

// IsNotExist reports whether err means nothing can exist at the path, either because it
// is missing or because one of its parents is not a directory.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func ensureParentExists(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), getOsFileModeForAccessMode(ports.ReadWriteExecute)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return nil
}

// expandPath resolves a leading ~ against the home directory. Both / and \ are accepted
// after the tilde so that config files written on Windows work elsewhere.
func expandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~\\") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, normalizePathSeparators(path[2:])), nil
}

func normalizePathSeparators(path string) string {
	sep := string(filepath.Separator)
	path = strings.ReplaceAll(path, "/", sep)
	return strings.ReplaceAll(path, "\\", sep)
}

func getOsFileModeForAccessMode(accessMode ports.AccessMode) os.FileMode {
	switch accessMode {
	case ports.ReadWrite:
		return 0600
	case ports.ReadWriteExecute:
		return 0700
	case ports.ReadAllWriteOwner:
		return 0644
	default:
		return 0600
	}
}
