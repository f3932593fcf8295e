package cmd

import (
	"github.com/spf13/cobra"

	"mkaudit.dev/pkg/mkaudit/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the inputs a fuzz run would audit",
		Long:  "Load the trace and print the audit candidates with input, output and edge counts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{ProjectArgs: projectArgs()})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
