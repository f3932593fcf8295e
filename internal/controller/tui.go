package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// recentLimit is how many divergent candidates stay on screen during an audit.
const recentLimit = 8

// TUI implements UI with a Bubble Tea progress view while auditing. Listings,
// queries and saved reports are printed like SimpleUI.
type TUI struct {
	*SimpleUI

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command, opts Options) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd, opts)}
}

// Start launches the progress view in fuzz mode. Other modes print directly.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode != ModeFuzz {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("progress view already started")
	}

	model := newAuditModel(t.styles, t.opts.Interrupt)
	t.program = tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithInput(t.cmd.InOrStdin()),
	)
	t.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := p.Run(); err != nil {
			slog.Debug("Progress view stopped", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the progress view if it is still running.
func (t *TUI) Close(ctx context.Context) {
	p, done := t.running()
	if p == nil {
		return
	}

	p.Quit()
	t.wait(ctx, done)
}

// Wait blocks until the progress view has exited.
func (t *TUI) Wait(ctx context.Context) {
	_, done := t.running()
	if done == nil {
		return
	}

	t.wait(ctx, done)
}

func (t *TUI) wait(ctx context.Context, done chan struct{}) {
	select {
	case <-done:
	case <-ctx.Done():
	}

	t.mu.Lock()
	t.program = nil
	t.done = nil
	t.mu.Unlock()
}

func (t *TUI) running() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

// DisplayAuditStart sets the progress total.
func (t *TUI) DisplayAuditStart(ctx context.Context, backend string, candidates int) {
	if p, _ := t.running(); p != nil {
		p.Send(auditStartMsg{backend: backend, total: candidates})
		return
	}

	t.SimpleUI.DisplayAuditStart(ctx, backend, candidates)
}

// DisplayCandidateStarted moves the spinner to the next candidate.
func (t *TUI) DisplayCandidateStarted(ctx context.Context, index, total int, path m.Path) {
	if p, _ := t.running(); p != nil {
		p.Send(candidateStartedMsg{index: index, total: total, path: path})
		return
	}

	t.SimpleUI.DisplayCandidateStarted(ctx, index, total, path)
}

// DisplayCandidateResult advances the progress bar and records divergences.
func (t *TUI) DisplayCandidateResult(ctx context.Context, result m.CandidateResult) {
	if p, _ := t.running(); p != nil {
		p.Send(candidateResultMsg{result: result})
		return
	}

	t.SimpleUI.DisplayCandidateResult(ctx, result)
}

// DisplayAuditSummary ends the progress view and prints the summary table.
func (t *TUI) DisplayAuditSummary(ctx context.Context, report m.AuditReport) {
	if p, done := t.running(); p != nil {
		p.Send(auditDoneMsg{})
		t.wait(ctx, done)
	}

	t.SimpleUI.DisplayAuditSummary(ctx, report)
}

type auditStartMsg struct {
	backend string
	total   int
}

type candidateStartedMsg struct {
	index int
	total int
	path  m.Path
}

type candidateResultMsg struct {
	result m.CandidateResult
}

type auditDoneMsg struct{}

// auditModel is the Bubble Tea model for a running audit.
type auditModel struct {
	styles    styles
	spinner   spinner.Model
	progress  progress.Model
	interrupt func()

	backend  string
	total    int
	finished int
	current  m.Path
	over     int
	under    int
	skipped  int
	recent   []m.CandidateResult
	quitting bool
}

func newAuditModel(st styles, interrupt func()) auditModel {
	return auditModel{
		styles:    st,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		interrupt: interrupt,
	}
}

func (am auditModel) Init() tea.Cmd {
	return am.spinner.Tick
}

func (am auditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return am.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		width := msg.Width - 20
		if width > 60 {
			width = 60
		}

		if width > 10 {
			am.progress.Width = width
		}

		return am, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		am.spinner, cmd = am.spinner.Update(msg)

		return am, cmd

	case auditStartMsg:
		am.backend = msg.backend
		am.total = msg.total

		return am, nil

	case candidateStartedMsg:
		am.current = msg.path
		am.total = msg.total

		return am, nil

	case candidateResultMsg:
		return am.record(msg.result), nil

	case auditDoneMsg:
		am.current = ""
		am.quitting = true

		return am, tea.Quit
	}

	return am, nil
}

//nolint:exhaustive // Only quit keys are handled while auditing
func (am auditModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		am.quitting = true

		if am.interrupt != nil {
			am.interrupt()
		}

		return am, tea.Quit
	default:
	}

	return am, nil
}

func (am auditModel) record(result m.CandidateResult) auditModel {
	am.finished++

	if result.Skipped {
		am.skipped++
		return am
	}

	am.over += len(result.Over)
	am.under += len(result.Under)

	if result.Divergent() {
		am.recent = append(am.recent, result)
		if len(am.recent) > recentLimit {
			am.recent = am.recent[len(am.recent)-recentLimit:]
		}
	}

	return am
}

func (am auditModel) percent() float64 {
	if am.total == 0 {
		return 0
	}

	return float64(am.finished) / float64(am.total)
}

func (am auditModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d/%d", am.progress.ViewAs(am.percent()), am.finished, am.total)

	if am.backend != "" {
		fmt.Fprintf(&b, " (%s)", am.backend)
	}

	b.WriteString("\n")

	if am.current != "" && !am.quitting {
		fmt.Fprintf(&b, "%s building after touching %s\n", am.spinner.View(), am.current)
	}

	fmt.Fprintf(&b, "over %d  under %d  skipped %d\n", am.over, am.under, am.skipped)

	for _, res := range am.recent {
		fmt.Fprintf(&b, "\n[%d/%d] %s:\n", res.Index, res.Total, res.Path)
		b.WriteString(formatWitnesses(res, am.styles))
	}

	return b.String()
}
