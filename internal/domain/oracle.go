package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"mkaudit.dev/pkg/mkaudit/internal/adapter"
	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// BackendKind names a native build tool.
type BackendKind string

// Supported backends.
const (
	BackendMake  BackendKind = "make"
	BackendNinja BackendKind = "ninja"
)

// DefaultBuildDir is the build directory name expected under the project root.
const DefaultBuildDir = "build"

// outputTailLines bounds how much subprocess output is attached to errors.
const outputTailLines = 20

// Backend describes how to drive one native build tool. Builds always run
// single-job so that output regeneration is attributable to one candidate.
type Backend struct {
	Kind   BackendKind
	Marker string
	Build  []string
	Clean  []string
}

// Backends is the fixed table of supported build tools, in detection order.
var Backends = []Backend{
	{
		Kind:   BackendMake,
		Marker: "Makefile",
		Build:  []string{"make", "-j1"},
		Clean:  []string{"make", "clean"},
	},
	{
		Kind:   BackendNinja,
		Marker: "build.ninja",
		Build:  []string{"ninja", "-j1"},
		Clean:  []string{"ninja", "clean"},
	},
}

// BackendFor returns the table entry for kind.
func BackendFor(kind BackendKind) (Backend, error) {
	for _, b := range Backends {
		if b.Kind == kind {
			return b, nil
		}
	}

	return Backend{}, fmt.Errorf("%w: unknown build backend %q", m.ErrSetup, kind)
}

// DetectBackend identifies the backend of a CMake project from the build files
// present in buildDir. When forced is non-empty that backend is used, but its
// marker file must still exist.
func DetectBackend(fs adapter.FSAdapter, projectDir, buildDir m.Path, forced BackendKind) (Backend, error) {
	if !fs.IsDir(buildDir) {
		return Backend{}, fmt.Errorf("%w: missing build directory %s", m.ErrSetup, buildDir)
	}

	if forced != "" {
		backend, err := BackendFor(forced)
		if err != nil {
			return Backend{}, err
		}

		marker := m.Path(filepath.Join(string(buildDir), backend.Marker))
		if !fs.Exists(marker) {
			return Backend{}, fmt.Errorf("%w: missing %s for %s backend", m.ErrSetup, marker, backend.Kind)
		}

		return backend, nil
	}

	if !fs.Exists(m.Path(filepath.Join(string(projectDir), "CMakeLists.txt"))) {
		return Backend{}, fmt.Errorf("%w: unknown project type at %s", m.ErrSetup, projectDir)
	}

	for _, backend := range Backends {
		if fs.Exists(m.Path(filepath.Join(string(buildDir), backend.Marker))) {
			return backend, nil
		}
	}

	return Backend{}, fmt.Errorf("%w: no Makefile or build.ninja in %s", m.ErrSetup, buildDir)
}

// BuildOracle runs builds of one project and decides which inputs are worth
// auditing.
type BuildOracle interface {
	// Build runs an incremental single-job build.
	Build(ctx context.Context) error
	// Clean removes all build outputs.
	Clean(ctx context.Context) error
	// CleanBuild cleans and runs a full build under the tracer, rewriting the trace.
	CleanBuild(ctx context.Context) error
	// Filter reports whether f is a legitimate audit candidate.
	Filter(f m.Path) bool
	// Config returns the oracle's configuration.
	Config() OracleConfig
}

// OracleConfig locates the project and the tracer.
type OracleConfig struct {
	Backend    Backend
	ProjectDir m.Path
	BuildDir   m.Path
	TracerPath m.Path
	TracePath  m.Path
}

type oracle struct {
	cfg    OracleConfig
	fs     adapter.FSAdapter
	runner adapter.CommandRunner
}

// NewBuildOracle constructs a BuildOracle. Every subprocess runs in
// cfg.BuildDir; the process working directory is never changed.
func NewBuildOracle(cfg OracleConfig, fs adapter.FSAdapter, runner adapter.CommandRunner) BuildOracle {
	return &oracle{
		cfg:    cfg,
		fs:     fs,
		runner: runner,
	}
}

func (o *oracle) Config() OracleConfig {
	return o.cfg
}

func (o *oracle) Build(ctx context.Context) error {
	slog.Debug("Running incremental build", "backend", o.cfg.Backend.Kind, "dir", o.cfg.BuildDir)

	if err := o.run(ctx, o.cfg.Backend.Build); err != nil {
		slog.Error("Build failed", "backend", o.cfg.Backend.Kind, "dir", o.cfg.BuildDir, "error", err)
		return fmt.Errorf("%w: %w", m.ErrBuildFailed, err)
	}

	return nil
}

func (o *oracle) Clean(ctx context.Context) error {
	slog.Debug("Cleaning build", "backend", o.cfg.Backend.Kind, "dir", o.cfg.BuildDir)

	if err := o.run(ctx, o.cfg.Backend.Clean); err != nil {
		slog.Error("Clean failed", "backend", o.cfg.Backend.Kind, "dir", o.cfg.BuildDir, "error", err)
		return fmt.Errorf("%w: %w", m.ErrCleanFailed, err)
	}

	return nil
}

func (o *oracle) CleanBuild(ctx context.Context) error {
	if err := o.Clean(ctx); err != nil {
		return err
	}

	if o.cfg.TracerPath == "" {
		return fmt.Errorf("%w: no tracer configured", m.ErrSetup)
	}

	args := make([]string, 0, len(o.cfg.Backend.Build)+3)
	args = append(args, string(o.cfg.TracerPath), "--output="+string(o.cfg.TracePath), "--")
	args = append(args, o.cfg.Backend.Build...)

	slog.Info("Running traced clean build", "tracer", o.cfg.TracerPath, "trace", o.cfg.TracePath)

	if err := o.run(ctx, args); err != nil {
		slog.Error("Traced build failed", "tracer", o.cfg.TracerPath, "error", err)
		return fmt.Errorf("%w: traced build: %w", m.ErrBuildFailed, err)
	}

	return nil
}

func (o *oracle) Filter(f m.Path) bool {
	if !o.fs.Writable(f) {
		return false
	}

	if o.cfg.TracerPath != "" && f == o.cfg.TracerPath {
		return false
	}

	return !f.Under(o.cfg.BuildDir)
}

func (o *oracle) run(ctx context.Context, args []string) error {
	out, err := o.runner.Run(ctx, o.cfg.BuildDir, args)
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s exited with status %d: %w\n%s",
		strings.Join(args, " "), adapter.ExitCode(err), err, tail(out, outputTailLines))
}

func tail(out string, n int) string {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	return strings.Join(lines, "\n")
}
