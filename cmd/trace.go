package cmd

import (
	"github.com/spf13/cobra"

	"mkaudit.dev/pkg/mkaudit/internal/domain"
)

// traceCmd represents the trace command.
var traceCmd = newTraceCmd()

func newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "Clean the project and rebuild it under the tracer",
		Long: `Clean the build directory and run a full build under the tracer, writing
the trace file used by the other commands. The tracer must be on PATH or
given with --tracer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Trace(cmd.Context(), domain.TraceArgs{ProjectArgs: projectArgs()})
		},
	}
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
