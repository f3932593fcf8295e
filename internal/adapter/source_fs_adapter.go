// Package adapter contains the filesystem, subprocess and storage boundaries
// the audit domain relies on.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// FSAdapter abstracts the filesystem operations the auditor performs on the
// project tree. It hides direct `os` access so the audit loop can be tested
// against an in-memory fake.
//
//nolint:interfacebloat // A richer interface keeps the domain decoupled from os/fs.
type FSAdapter interface {
	// Canonical returns the absolute form of path with symlinks resolved.
	// Paths that do not exist are cleaned and made absolute only.
	Canonical(path string) (m.Path, error)

	// ModTime returns the last modification time of path. A missing file
	// yields an error satisfying errors.Is(err, os.ErrNotExist).
	ModTime(path m.Path) (time.Time, error)

	// Touch sets both access and modification time of path to t without
	// changing its content.
	Touch(path m.Path, t time.Time) error

	// Writable reports whether the current process may write path.
	Writable(path m.Path) bool

	// Exists reports whether path exists.
	Exists(path m.Path) bool

	// IsDir reports whether path exists and is a directory.
	IsDir(path m.Path) bool

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// LocalFSAdapter implements FSAdapter on top of the os package.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// Canonical returns the absolute, symlink-free form of path.
func (a *LocalFSAdapter) Canonical(path string) (m.Path, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path of %s: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.Path(filepath.Clean(abs)), nil
		}

		return "", fmt.Errorf("resolve symlinks of %s: %w", abs, err)
	}

	return m.Path(resolved), nil
}

// ModTime returns the last modification time of path.
func (a *LocalFSAdapter) ModTime(path m.Path) (time.Time, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		return time.Time{}, err
	}

	return info.ModTime(), nil
}

// Touch updates the access and modification time of path.
func (a *LocalFSAdapter) Touch(path m.Path, t time.Time) error {
	return os.Chtimes(string(path), t, t)
}

// Writable reports whether the current process has write access to path.
func (a *LocalFSAdapter) Writable(path m.Path) bool {
	return writable(string(path))
}

// Exists reports whether path exists.
func (a *LocalFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))
	return err == nil
}

// IsDir reports whether path is an existing directory.
func (a *LocalFSAdapter) IsDir(path m.Path) bool {
	info, err := os.Stat(string(path))
	return err == nil && info.IsDir()
}

// RelPath returns the relative path from base to target.
func (a *LocalFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
