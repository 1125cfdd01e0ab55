// Package docfile validates user-supplied document paths and resolves
// them to canonical absolute paths suitable for use as cache identities.
package docfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidPath is returned for empty paths, directories, and files
	// that are not PDF documents.
	ErrInvalidPath = errors.New("invalid document path")

	// ErrFileNotFound is returned when the path does not exist.
	ErrFileNotFound = errors.New("document not found")
)

// Validate checks that path names an existing PDF file and returns its
// canonical absolute path, with symlinks resolved. The result is stable
// for a given physical file, so equal documents reached through
// different spellings of the path share a cache identity.
func Validate(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	info, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, abs)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInvalidPath, abs)
	}
	if !strings.EqualFold(filepath.Ext(abs), ".pdf") {
		return "", fmt.Errorf("%w: %s is not a PDF file", ErrInvalidPath, abs)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	return resolved, nil
}
