package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mkaudit.dev/pkg/mkaudit/internal/adapter"
	"mkaudit.dev/pkg/mkaudit/internal/controller"
	m "mkaudit.dev/pkg/mkaudit/internal/model"
	"mkaudit.dev/pkg/mkaudit/pkg"
)

// ProjectArgs locates the project, its build directory and its trace.
type ProjectArgs struct {
	// Project is the source root. It must contain the build directory.
	Project m.Path
	// BuildDir defaults to <Project>/build.
	BuildDir m.Path
	// Backend forces a build tool instead of detecting one.
	Backend BackendKind
	// Trace is the tracer output file.
	Trace m.Path
	// Tracer is the resolved tracer executable, needed only for traced builds.
	Tracer m.Path
	// Workers bounds the stat fan-out of a snapshot.
	Workers int
}

// FuzzArgs contains the arguments for an audit session.
type FuzzArgs struct {
	ProjectArgs
	// Files overrides candidate selection when non-empty.
	Files []string
	// CleanBuild re-traces the project before auditing.
	CleanBuild bool
	// Limit caps the number of candidates; zero audits all of them.
	Limit int
	// Reports is the directory audit reports are written to.
	Reports m.Path
}

// QueryArgs contains the arguments for a dependents query.
type QueryArgs struct {
	ProjectArgs
	Files          []string
	IgnorePrefixes []string
	Format         controller.QueryFormat
}

// ListArgs contains the arguments for listing candidates.
type ListArgs struct {
	ProjectArgs
}

// TraceArgs contains the arguments for a traced clean build.
type TraceArgs struct {
	ProjectArgs
}

// ViewArgs contains the arguments for viewing a saved report.
type ViewArgs struct {
	Reports m.Path
	Session string
}

// Workflow is the entry point of every command.
type Workflow interface {
	Fuzz(ctx context.Context, args FuzzArgs) error
	Query(ctx context.Context, args QueryArgs) error
	List(ctx context.Context, args ListArgs) error
	Trace(ctx context.Context, args TraceArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.TraceStore
	adapter.ReportStore
	controller.UI

	fs     adapter.FSAdapter
	runner adapter.CommandRunner
	now    func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fs adapter.FSAdapter,
	runner adapter.CommandRunner,
	traceStore adapter.TraceStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		TraceStore:  traceStore,
		ReportStore: reportStore,
		UI:          ui,
		fs:          fs,
		runner:      runner,
		now:         time.Now,
	}
}

// session is everything loaded for one command over one project.
type session struct {
	oracle   BuildOracle
	graph    *Graph
	universe m.Universe
}

// newOracle canonicalises the project layout and detects the backend.
func (w *workflow) newOracle(args ProjectArgs) (BuildOracle, error) {
	project, err := w.fs.Canonical(string(args.Project))
	if err != nil {
		slog.Error("Failed to resolve project", "project", args.Project, "error", err)
		return nil, fmt.Errorf("%w: resolve project %s: %w", m.ErrSetup, args.Project, err)
	}

	buildDir := args.BuildDir
	if buildDir == "" {
		buildDir = m.Path(filepath.Join(string(project), DefaultBuildDir))
	} else if !filepath.IsAbs(string(buildDir)) {
		buildDir = m.Path(filepath.Join(string(project), string(buildDir)))
	}

	buildDir, err = w.fs.Canonical(string(buildDir))
	if err != nil {
		slog.Error("Failed to resolve build directory", "dir", buildDir, "error", err)
		return nil, fmt.Errorf("%w: resolve build directory: %w", m.ErrSetup, err)
	}

	backend, err := DetectBackend(w.fs, project, buildDir, args.Backend)
	if err != nil {
		slog.Error("Failed to detect build backend", "project", project, "build_dir", buildDir, "error", err)
		return nil, err
	}

	slog.Info("Detected project", "project", project, "build_dir", buildDir, "backend", backend.Kind)

	return NewBuildOracle(OracleConfig{
		Backend:    backend,
		ProjectDir: project,
		BuildDir:   buildDir,
		TracerPath: args.Tracer,
		TracePath:  args.Trace,
	}, w.fs, w.runner), nil
}

func (w *workflow) loadGraph(path m.Path) (*m.Trace, *Graph, error) {
	trace, err := w.LoadTrace(path)
	if err != nil {
		return nil, nil, err
	}

	graph, err := LoadGraph(trace, w.fs)
	if err != nil {
		slog.Error("Failed to build dependency graph", "trace", path, "error", err)
		return nil, nil, err
	}

	return trace, graph, nil
}

func (w *workflow) openSession(ctx context.Context, args ProjectArgs, cleanBuild bool) (*session, error) {
	oracle, err := w.newOracle(args)
	if err != nil {
		return nil, err
	}

	if cleanBuild {
		if err := oracle.CleanBuild(ctx); err != nil {
			return nil, err
		}
	}

	trace, graph, err := w.loadGraph(args.Trace)
	if err != nil {
		return nil, err
	}

	universe, err := LoadUniverse(trace, w.fs)
	if err != nil {
		slog.Error("Failed to load file universe", "trace", args.Trace, "error", err)
		return nil, err
	}

	if overlap := universe.Overlap(); overlap.Len() > 0 {
		slog.Warn("Traced inputs and outputs overlap", "count", overlap.Len(), "first", overlap.Sorted()[0])
	}

	slog.Info("Loaded trace",
		"trace", args.Trace,
		"inputs", universe.Inputs.Len(),
		"outputs", universe.Outputs.Len(),
		"edges", graph.Edges(),
	)

	return &session{oracle: oracle, graph: graph, universe: universe}, nil
}

func (w *workflow) newAuditor(s *session, workers int) Auditor {
	return NewAuditor(s.oracle, s.graph, s.universe, w.fs, NewSnapshotter(w.fs, workers))
}

func (w *workflow) Fuzz(ctx context.Context, args FuzzArgs) error {
	s, err := w.openSession(ctx, args.ProjectArgs, args.CleanBuild)
	if err != nil {
		return err
	}

	auditor := w.newAuditor(s, args.Workers)

	candidates, err := auditor.Candidates(args.Files)
	if err != nil {
		return err
	}

	if args.Limit > 0 && len(candidates) > args.Limit {
		slog.Info("Limiting candidates", "limit", args.Limit, "available", len(candidates))
		candidates = candidates[:args.Limit]
	}

	journal, err := pkg.NewJournal[m.CandidateResult]("", false)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}

	defer func() {
		if err := journal.Close(); err != nil {
			slog.Warn("Failed to close journal", "path", journal.Path(), "error", err)
		}
	}()

	cfg := s.oracle.Config()
	report := m.AuditReport{
		SessionID:  uuid.NewString(),
		Project:    cfg.ProjectDir,
		Backend:    string(cfg.Backend.Kind),
		TracePath:  args.Trace,
		StartedAt:  w.now(),
		Candidates: len(candidates),
	}

	if err := w.Start(ctx, controller.WithFuzzMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	w.DisplayAuditStart(ctx, report.Backend, len(candidates))

	slog.Info("Starting audit", "session", report.SessionID, "candidates", len(candidates))

	runErr := auditor.Run(ctx, candidates, &recorder{ctx: ctx, ui: w.UI, journal: journal})

	report.FinishedAt = w.now()

	if err := journal.Range(func(_ int, result m.CandidateResult) error {
		report.Results = append(report.Results, result)
		return nil
	}); err != nil {
		return errors.Join(runErr, fmt.Errorf("read journal: %w", err))
	}

	path, saveErr := w.SaveReport(args.Reports, report)
	if saveErr != nil {
		saveErr = fmt.Errorf("save report: %w", saveErr)
	} else {
		slog.Info("Saved audit report", "path", path, "session", report.SessionID)
	}

	if runErr != nil {
		slog.Error("Audit aborted", "session", report.SessionID, "completed", len(report.Results), "error", runErr)
		return errors.Join(fmt.Errorf("audit: %w", runErr), saveErr)
	}

	w.DisplayAuditSummary(ctx, report)

	return saveErr
}

// recorder forwards audit progress to the UI and journals every result.
type recorder struct {
	ctx     context.Context
	ui      controller.UI
	journal pkg.Journal[m.CandidateResult]
}

func (r *recorder) CandidateStarted(index, total int, path m.Path) {
	r.ui.DisplayCandidateStarted(r.ctx, index, total, path)
}

func (r *recorder) CandidateFinished(result m.CandidateResult) error {
	r.ui.DisplayCandidateResult(r.ctx, result)

	if err := r.journal.Append(result); err != nil {
		return fmt.Errorf("journal result: %w", err)
	}

	return nil
}

// Query requires a recognised project even though it never builds, so a
// mistyped project directory fails before any path is relativised against it.
func (w *workflow) Query(ctx context.Context, args QueryArgs) error {
	oracle, err := w.newOracle(args.ProjectArgs)
	if err != nil {
		return err
	}

	_, graph, err := w.loadGraph(args.Trace)
	if err != nil {
		return err
	}

	results, err := NewQuerier(graph, w.fs, oracle.Config().ProjectDir, args.IgnorePrefixes).Query(args.Files)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithQueryMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	if err := w.DisplayQueryResults(ctx, results, args.Format); err != nil {
		slog.Error("Failed to display query results", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	s, err := w.openSession(ctx, args.ProjectArgs, false)
	if err != nil {
		return err
	}

	return w.displayStats(ctx, s, args.Workers)
}

func (w *workflow) Trace(ctx context.Context, args TraceArgs) error {
	s, err := w.openSession(ctx, args.ProjectArgs, true)
	if err != nil {
		return err
	}

	return w.displayStats(ctx, s, args.Workers)
}

func (w *workflow) displayStats(ctx context.Context, s *session, workers int) error {
	candidates, err := w.newAuditor(s, workers).Candidates(nil)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	w.DisplayTraceStats(ctx, m.Stats{
		Inputs:     s.universe.Inputs.Len(),
		Outputs:    s.universe.Outputs.Len(),
		Edges:      s.graph.Edges(),
		Candidates: candidates,
	})

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Reports, args.Session)
	if err != nil {
		slog.Error("Failed to load report", "reports", args.Reports, "session", args.Session, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	w.DisplayAuditStart(ctx, report.Backend, report.Candidates)

	for _, result := range report.Results {
		if !result.Skipped {
			w.DisplayCandidateStarted(ctx, result.Index, result.Total, result.Path)
		}

		w.DisplayCandidateResult(ctx, result)
	}

	w.DisplayAuditSummary(ctx, report)

	return nil
}
