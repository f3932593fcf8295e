// Package controller renders audit progress, reports and query listings.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeFuzz
	ModeQuery
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithListMode sets the UI to candidate listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithFuzzMode sets the UI to audit progress mode.
func WithFuzzMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFuzz
	}
}

// WithQueryMode sets the UI to query listing mode.
func WithQueryMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeQuery
	}
}

// WithViewMode sets the UI to saved report mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeList}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// QueryFormat selects how query results are printed.
type QueryFormat string

// Available query formats.
const (
	QueryFormatText QueryFormat = "text"
	QueryFormatYAML QueryFormat = "yaml"
)

// UI defines how the workflow reports to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish
	DisplayTraceStats(ctx context.Context, stats m.Stats)
	DisplayAuditStart(ctx context.Context, backend string, candidates int)
	DisplayCandidateStarted(ctx context.Context, index, total int, path m.Path)
	DisplayCandidateResult(ctx context.Context, result m.CandidateResult)
	DisplayAuditSummary(ctx context.Context, report m.AuditReport)
	DisplayQueryResults(ctx context.Context, results []m.QueryResult, format QueryFormat) error
}

// Options tunes the rendering shared by all UI implementations.
type Options struct {
	// ShowDiff prints a unified diff of expected and rebuilt outputs for
	// every divergent candidate.
	ShowDiff bool
	// Interrupt is called when the user aborts from an interactive view.
	Interrupt func()
}

// Kind selects a UI implementation.
type Kind string

// Available UI kinds.
const (
	KindAuto   Kind = "auto"
	KindSimple Kind = "simple"
	KindTUI    Kind = "tui"
)

// NewUI picks a UI for cmd. KindAuto uses the TUI only when stdout is a terminal.
func NewUI(cmd *cobra.Command, kind Kind, opts Options) UI {
	useTUI := false

	switch kind {
	case KindTUI:
		useTUI = true
	case KindAuto:
		useTUI = IsTTY(cmd.OutOrStdout())
	case KindSimple:
	}

	if useTUI {
		return NewTUI(cmd, opts)
	}

	return NewSimpleUI(cmd, opts)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
