package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// SimpleUI prints plain progress lines to the command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	opts   Options
	styles styles
}

type styles struct {
	over    lipgloss.Style
	under   lipgloss.Style
	missing lipgloss.Style
	note    lipgloss.Style
	header  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		over:    r.NewStyle().Foreground(lipgloss.Color("3")),
		under:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		missing: r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		note:    r.NewStyle().Faint(true),
		header:  r.NewStyle().Bold(true),
	}
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, opts Options) *SimpleUI {
	return &SimpleUI{
		cmd:    cmd,
		opts:   opts,
		styles: newStyles(cmd.OutOrStdout()),
	}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait is a no-op: SimpleUI prints and continues.
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayTraceStats prints the candidate list and trace counts.
func (s *SimpleUI) DisplayTraceStats(ctx context.Context, stats m.Stats) {
	if ctx.Err() != nil {
		return
	}

	for _, c := range stats.Candidates {
		s.printf("%s\n", c)
	}

	s.printf("\n%s", renderStatsTable(stats))
}

func renderStatsTable(stats m.Stats) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Inputs", "Outputs", "Edges", "Candidates"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.Append([]string{
		fmt.Sprintf("%d", stats.Inputs),
		fmt.Sprintf("%d", stats.Outputs),
		fmt.Sprintf("%d", stats.Edges),
		fmt.Sprintf("%d", len(stats.Candidates)),
	})
	table.Render()

	return buf.String()
}

// DisplayAuditStart announces the number of candidates.
func (s *SimpleUI) DisplayAuditStart(ctx context.Context, backend string, candidates int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Auditing %d candidate(s) with %s\n", candidates, backend)
}

// DisplayCandidateStarted prints the progress header for one candidate.
func (s *SimpleUI) DisplayCandidateStarted(ctx context.Context, index, total int, path m.Path) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[%d/%d] %s:\n", index, total, path)
}

// DisplayCandidateResult prints the witnesses of one candidate.
func (s *SimpleUI) DisplayCandidateResult(ctx context.Context, result m.CandidateResult) {
	if ctx.Err() != nil || result.Skipped {
		return
	}

	s.printf("%s", formatWitnesses(result, s.styles))

	if s.opts.ShowDiff && result.Divergent() {
		s.printf("%s", renderDiff(result))
	}
}

func formatWitnesses(result m.CandidateResult, st styles) string {
	var b strings.Builder

	for _, p := range result.Over {
		b.WriteString("  " + st.over.Render(m.Over.Marker()) + " " + string(p) + "\n")
	}

	for _, p := range result.Under {
		b.WriteString("  " + st.under.Render(m.Under.Marker()) + " " + string(p) + "\n")
	}

	for _, p := range result.Missing {
		b.WriteString("  " + st.missing.Render("!") + " " + string(p) + " (missing)\n")
	}

	if result.Resynced {
		b.WriteString("  " + st.note.Render("baseline re-established with a clean build") + "\n")
	}

	return b.String()
}

// renderDiff shows the declared dependents against the rebuilt outputs.
func renderDiff(result m.CandidateResult) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(joinPaths(result.Expected)),
		B:        difflib.SplitLines(joinPaths(result.Modified)),
		FromFile: "declared",
		ToFile:   "rebuilt",
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}

	return text
}

func joinPaths(paths []m.Path) string {
	if len(paths) == 0 {
		return ""
	}

	var b strings.Builder

	for _, p := range paths {
		b.WriteString(string(p))
		b.WriteByte('\n')
	}

	return b.String()
}

// DisplayAuditSummary prints a table of divergent candidates and totals.
func (s *SimpleUI) DisplayAuditSummary(ctx context.Context, report m.AuditReport) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s", s.styles.header.Render("Audit summary"))
	s.printf("\n%s", renderSummaryTable(report))
}

func renderSummaryTable(report m.AuditReport) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Input", "Over", "Under", "Missing", "Resync"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, res := range report.Divergent() {
		resync := ""
		if res.Resynced {
			resync = "yes"
		}

		table.Append([]string{
			string(res.Path),
			fmt.Sprintf("%d", len(res.Over)),
			fmt.Sprintf("%d", len(res.Under)),
			fmt.Sprintf("%d", len(res.Missing)),
			resync,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d audited, %d skipped", len(report.Results)-report.Skipped(), report.Skipped()),
		fmt.Sprintf("%d", report.Count(m.Over)),
		fmt.Sprintf("%d", report.Count(m.Under)),
		"",
		"",
	})
	table.Render()

	return buf.String()
}

// DisplayQueryResults prints the dependents of every queried file.
func (s *SimpleUI) DisplayQueryResults(ctx context.Context, results []m.QueryResult, format QueryFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format == QueryFormatYAML {
		data, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("marshal query results: %w", err)
		}

		s.printf("%s", data)

		return nil
	}

	s.printf("%s", formatQueryText(results))

	return nil
}

func formatQueryText(results []m.QueryResult) string {
	var b strings.Builder

	for _, res := range results {
		fmt.Fprintf(&b, "%s :\n", res.Name)

		for _, dep := range res.Deps {
			fmt.Fprintf(&b, "   %s\n", dep)
		}
	}

	return b.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
