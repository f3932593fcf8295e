package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mkaudit.dev/pkg/mkaudit/internal/adapter"
	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// Auditor touches candidate inputs one at a time, rebuilds, and compares the
// outputs that changed with the outputs the graph declares as dependents.
type Auditor interface {
	// Candidates returns the files to audit. Without explicit files it is the
	// sorted set of traced inputs accepted by the oracle's filter; explicit
	// files are normalised and used as given.
	Candidates(explicit []string) ([]m.Path, error)
	// Run audits every candidate in order, reporting each one to observer as
	// soon as it is known.
	Run(ctx context.Context, candidates []m.Path, observer AuditObserver) error
}

// AuditObserver receives audit progress.
type AuditObserver interface {
	// CandidateStarted is called once a writable candidate is about to be
	// touched and rebuilt.
	CandidateStarted(index, total int, path m.Path)
	// CandidateFinished is called with every result, skipped ones included.
	// A non-nil error aborts the audit.
	CandidateFinished(result m.CandidateResult) error
}

// baselineState tracks whether the last snapshot reflects fully built outputs.
type baselineState int

const (
	// trusted means the baseline snapshot matches a correct build.
	trusted baselineState = iota
	// needsResync means a missed rebuild left outputs stale; the baseline must
	// be re-established by a clean build before the next candidate.
	needsResync
)

func (s baselineState) String() string {
	if s == needsResync {
		return "needs-resync"
	}

	return "trusted"
}

type auditor struct {
	oracle   BuildOracle
	graph    *Graph
	universe m.Universe
	fs       adapter.FSAdapter
	snap     *Snapshotter
	now      func() time.Time
}

// NewAuditor constructs an Auditor over a loaded graph and universe.
func NewAuditor(oracle BuildOracle, graph *Graph, universe m.Universe, fs adapter.FSAdapter, snap *Snapshotter) Auditor {
	return &auditor{
		oracle:   oracle,
		graph:    graph,
		universe: universe,
		fs:       fs,
		snap:     snap,
		now:      time.Now,
	}
}

func (a *auditor) Candidates(explicit []string) ([]m.Path, error) {
	if len(explicit) > 0 {
		out := make([]m.Path, 0, len(explicit))

		for _, f := range explicit {
			p, err := a.fs.Canonical(f)
			if err != nil {
				slog.Error("Failed to normalise candidate", "path", f, "error", err)
				return nil, fmt.Errorf("normalise %s: %w", f, err)
			}

			out = append(out, p)
		}

		return out, nil
	}

	var out []m.Path

	for _, f := range a.universe.Inputs.Difference(a.universe.Outputs).Sorted() {
		if a.oracle.Filter(f) {
			out = append(out, f)
		}
	}

	return out, nil
}

func (a *auditor) Run(ctx context.Context, candidates []m.Path, observer AuditObserver) error {
	outputs := a.universe.Outputs

	baseline, err := a.establishBaseline(ctx)
	if err != nil {
		return err
	}

	for i, f := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, next, err := a.audit(ctx, i, len(candidates), f, baseline, outputs, observer)
		if err != nil {
			return err
		}

		baseline = next

		if err := observer.CandidateFinished(result); err != nil {
			return err
		}
	}

	return nil
}

// establishBaseline snapshots the outputs before the first candidate. Outputs
// missing at this point mean the tree is not fully built, so it is rebuilt
// from clean before any comparison is made.
func (a *auditor) establishBaseline(ctx context.Context) (m.Snapshot, error) {
	baseline, missing, err := a.snap.Capture(ctx, a.universe.Outputs, true)
	if err != nil {
		return nil, err
	}

	if len(missing) == 0 {
		return baseline, nil
	}

	slog.Warn("Outputs missing before audit, rebuilding", "count", len(missing), "first", missing[0])

	return a.resync(ctx)
}

func (a *auditor) audit(
	ctx context.Context,
	index, total int,
	f m.Path,
	t0 m.Snapshot,
	outputs m.PathSet,
	observer AuditObserver,
) (m.CandidateResult, m.Snapshot, error) {
	start := a.now()
	result := m.CandidateResult{Index: index + 1, Total: total, Path: f}

	// Candidates may have changed state since selection.
	if !a.fs.Writable(f) {
		slog.Info("Skipping candidate without write access", "path", f)

		result.Skipped = true

		return result, t0, nil
	}

	observer.CandidateStarted(result.Index, total, f)

	if err := a.fs.Touch(f, start); err != nil {
		slog.Error("Failed to touch candidate", "path", f, "error", err)
		return result, nil, fmt.Errorf("touch %s: %w", f, err)
	}

	if err := a.oracle.Build(ctx); err != nil {
		return result, nil, err
	}

	t1, missing, err := a.snap.Capture(ctx, outputs, true)
	if err != nil {
		return result, nil, err
	}

	missingSet := m.NewPathSet(missing...)
	modified := t0.Modified(t1).Difference(missingSet)
	expected := a.graph.FindDeps(f).Intersect(outputs)

	result.Expected = expected.Sorted()
	result.Modified = modified.Sorted()
	result.Over = modified.Difference(expected).Sorted()
	result.Under = expected.Difference(modified).Difference(missingSet).Sorted()
	result.Missing = missing

	state := trusted
	if len(result.Under) > 0 || len(result.Missing) > 0 {
		state = needsResync
	}

	slog.Info("Audited candidate",
		"path", f,
		"expected", len(result.Expected),
		"modified", len(result.Modified),
		"over", len(result.Over),
		"under", len(result.Under),
		"missing", len(result.Missing),
		"state", state,
	)

	if state == needsResync {
		t1, err = a.resync(ctx)
		if err != nil {
			return result, nil, err
		}

		result.Resynced = true
	}

	result.Duration = a.now().Sub(start)

	return result, t1, nil
}

// resync rebuilds from clean and returns a strict snapshot of the result. An
// output still missing after a full rebuild is fatal.
func (a *auditor) resync(ctx context.Context) (m.Snapshot, error) {
	slog.Info("Re-establishing baseline with a clean build")

	if err := a.oracle.Clean(ctx); err != nil {
		return nil, err
	}

	if err := a.oracle.Build(ctx); err != nil {
		return nil, err
	}

	snapshot, _, err := a.snap.Capture(ctx, a.universe.Outputs, false)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
