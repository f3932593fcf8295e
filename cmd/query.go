package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mkaudit.dev/pkg/mkaudit/internal/controller"
	"mkaudit.dev/pkg/mkaudit/internal/domain"
)

// queryCmd represents the query command.
var queryCmd = newQueryCmd()

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <files...>",
		Short: "List the outputs the trace records as depending on files",
		Long: `Print every file reachable from each argument in the traced dependency
graph. Paths under the project root are shown relative to it. Nothing is
built or modified.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := controller.QueryFormat(viper.GetString(formatConfigKey))
			if format != controller.QueryFormatText && format != controller.QueryFormatYAML {
				return fmt.Errorf("unknown format %q", format)
			}

			return workflow.Query(cmd.Context(), domain.QueryArgs{
				ProjectArgs:    projectArgs(),
				Files:          args,
				IgnorePrefixes: viper.GetStringSlice(ignoreConfigKey),
				Format:         format,
			})
		},
	}

	cmd.Flags().StringP(formatFlagName, "f", viper.GetString(formatConfigKey), "output format: text or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().StringSlice(ignoreFlagName, viper.GetStringSlice(ignoreConfigKey), "hide dependents under these path prefixes")
	bindFlagToConfig(cmd.Flags().Lookup(ignoreFlagName), ignoreConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
