package adapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// TraceStore loads the output of a traced build.
type TraceStore interface {
	LoadTrace(path m.Path) (*m.Trace, error)
}

// JSONTraceStore decodes the tracer's JSON output file.
type JSONTraceStore struct{}

// NewJSONTraceStore constructs a JSONTraceStore.
func NewJSONTraceStore() *JSONTraceStore {
	return &JSONTraceStore{}
}

// LoadTrace reads and decodes the trace at path.
func (s *JSONTraceStore) LoadTrace(path m.Path) (*m.Trace, error) {
	// #nosec G304 - trace location is configured by the caller
	f, err := os.Open(string(path))
	if err != nil {
		slog.Error("Failed to open trace", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %w", m.ErrUnreadableTrace, err)
	}

	defer func() {
		_ = f.Close()
	}()

	var trace m.Trace
	if err := json.NewDecoder(f).Decode(&trace); err != nil {
		slog.Error("Failed to decode trace", "path", path, "error", err)
		return nil, fmt.Errorf("%w: decode %s: %w", m.ErrUnreadableTrace, path, err)
	}

	slog.Debug("Loaded trace", "path", path, "files", len(trace.Files), "procs", len(trace.Procs))

	return &trace, nil
}
