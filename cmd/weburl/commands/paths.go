package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrDirectoryPath indicates a file operation was attempted on a directory.
	ErrDirectoryPath = errors.New("path points to a directory")
	// ErrEmptyPath indicates a path argument was empty.
	ErrEmptyPath = errors.New("path is empty")
	// ErrPathContainsNUL indicates the path contains a NUL byte.
	ErrPathContainsNUL = errors.New("path contains NUL byte")
)

// resolveUserFile returns the absolute path of an existing regular file and
// its size.
func resolveUserFile(path string) (string, int64, error) {
	if strings.TrimSpace(path) == "" {
		return "", 0, ErrEmptyPath
	}

	if strings.ContainsRune(path, '\x00') {
		return "", 0, fmt.Errorf("%w: %q", ErrPathContainsNUL, path)
	}

	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", 0, fmt.Errorf("resolve absolute path for %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", 0, fmt.Errorf("stat %s: %w", absPath, err)
	}

	if info.IsDir() {
		return "", 0, fmt.Errorf("%w: %s", ErrDirectoryPath, absPath)
	}

	return absPath, info.Size(), nil
}
