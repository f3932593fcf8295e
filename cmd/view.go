package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mkaudit.dev/pkg/mkaudit/internal/domain"
	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [session]",
		Short: "View a previously saved audit report",
		Long:  "View the latest audit report, or the report of the given session, from the reports directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viewArgs := domain.ViewArgs{Reports: m.Path(viper.GetString(outputFlagName))}
			if len(args) == 1 {
				viewArgs.Session = args[0]
			}

			return workflow.View(cmd.Context(), viewArgs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
