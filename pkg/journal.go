// Package pkg provides utilities shared by mkaudit commands.
package pkg

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Journal is an append-only, disk-backed log of items of type T.
// Audit sessions over large projects produce one entry per candidate; the
// journal keeps them out of memory until the final report is assembled.
type Journal[T any] interface {
	Len() int
	Path() string
	Append(item T) error
	Range(fn func(index int, item T) error) error
	Close() error
}

type gobJournal[T any] struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	encoder *gob.Encoder
	length  int
	keep    bool
}

// NewJournal creates a journal file in dir. An empty dir uses os.TempDir.
// When keep is false the file is removed on Close.
func NewJournal[T any](dir string, keep bool) (Journal[T], error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create journal directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "mkaudit-*.journal")
	if err != nil {
		slog.Error("failed to create journal file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create journal file: %w", err)
	}

	slog.Debug("created journal", "path", file.Name())

	return &gobJournal[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
		keep:    keep,
	}, nil
}

// Len implements Journal.
func (j *gobJournal[T]) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.length
}

// Path implements Journal.
func (j *gobJournal[T]) Path() string {
	return j.path
}

// Append implements Journal.
func (j *gobJournal[T]) Append(item T) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return fmt.Errorf("journal %s is closed", j.path)
	}

	if err := j.encoder.Encode(item); err != nil {
		slog.Error("failed to encode journal entry", "path", j.path, "index", j.length, "error", err)
		return fmt.Errorf("failed to encode journal entry: %w", err)
	}

	j.length++

	return nil
}

// Range implements Journal. Entries are decoded in append order.
func (j *gobJournal[T]) Range(fn func(index int, item T) error) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	// #nosec G304 - the journal path was created by NewJournal
	file, err := os.Open(j.path)
	if err != nil {
		slog.Error("failed to open journal for range", "path", j.path, "error", err)
		return fmt.Errorf("failed to open journal: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close journal reader", "path", j.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range j.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode journal entry", "path", j.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode journal entry %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements Journal.
func (j *gobJournal[T]) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return nil
	}

	err := j.file.Close()
	j.file = nil

	if err != nil {
		slog.Error("failed to close journal", "path", j.path, "error", err)
		return err
	}

	if !j.keep {
		if err := os.Remove(j.path); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove journal", "path", j.path, "error", err)
		}
	}

	return nil
}
