package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"mkaudit.dev/pkg/mkaudit/internal/adapter"
	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// DefaultSnapshotWorkers bounds the number of concurrent stat calls.
const DefaultSnapshotWorkers = 8

// Snapshotter captures modification times for a fixed set of files.
type Snapshotter struct {
	fs      adapter.FSAdapter
	workers int
}

// NewSnapshotter constructs a Snapshotter. workers <= 0 uses DefaultSnapshotWorkers.
func NewSnapshotter(fs adapter.FSAdapter, workers int) *Snapshotter {
	if workers <= 0 {
		workers = DefaultSnapshotWorkers
	}

	return &Snapshotter{fs: fs, workers: workers}
}

// Capture reads the modification time of every file in files.
//
// A file that disappeared yields ErrMissingOutput unless tolerateMissing is
// set, in which case it is left out of the snapshot and returned in missing.
func (s *Snapshotter) Capture(ctx context.Context, files m.PathSet, tolerateMissing bool) (m.Snapshot, []m.Path, error) {
	var (
		mu      sync.Mutex
		missing []m.Path
	)

	snapshot := make(m.Snapshot, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for _, path := range files.Sorted() {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			mtime, err := s.fs.ModTime(path)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				snapshot[path] = mtime
			case errors.Is(err, os.ErrNotExist):
				missing = append(missing, path)
			default:
				slog.Error("Failed to stat output", "path", path, "error", err)
				return fmt.Errorf("stat %s: %w", path, err)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	missing = m.NewPathSet(missing...).Sorted()

	if len(missing) > 0 && !tolerateMissing {
		slog.Error("Outputs missing from snapshot", "count", len(missing), "first", missing[0])
		return nil, missing, fmt.Errorf("%w: %s", m.ErrMissingOutput, missing[0])
	}

	slog.Debug("Captured snapshot", "files", len(snapshot), "missing", len(missing))

	return snapshot, missing, nil
}
