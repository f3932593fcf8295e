package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mkaudit.dev/pkg/mkaudit/internal/domain"
	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

const fuzzLongDescription = `Audit the traced dependency graph against the real build.

Every candidate input is touched in turn and the project is rebuilt with a
single job. Rebuilt outputs the graph does not list are printed with "+",
listed outputs that were not rebuilt with "-". After a missing dependency
the project is cleaned and rebuilt so the next candidate starts from a
correct tree.

Without arguments the candidates are all traced inputs the user may write,
outside the build directory. Passing files audits exactly those files.`

// fuzzCmd represents the fuzz command.
var fuzzCmd = newFuzzCmd()

func newFuzzCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuzz [files...]",
		Short: "Touch inputs one by one and compare rebuilt outputs with the graph",
		Long:  fuzzLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Fuzz(cmd.Context(), domain.FuzzArgs{
				ProjectArgs: projectArgs(),
				Files:       args,
				CleanBuild:  viper.GetBool(cleanBuildConfigKey),
				Limit:       viper.GetInt(limitConfigKey),
				Reports:     m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	configureFuzzFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(fuzzCmd)
}

func configureFuzzFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(cleanBuildFlagName, viper.GetBool(cleanBuildConfigKey), "re-trace the project with a clean build first")
	bindFlagToConfig(cmd.Flags().Lookup(cleanBuildFlagName), cleanBuildConfigKey)

	cmd.Flags().IntP(limitFlagName, "n", viper.GetInt(limitConfigKey), "audit at most this many candidates (0 for all)")
	bindFlagToConfig(cmd.Flags().Lookup(limitFlagName), limitConfigKey)

	cmd.Flags().Bool(diffFlagName, viper.GetBool(diffConfigKey), "print a diff of expected and rebuilt outputs for divergent inputs")
	bindFlagToConfig(cmd.Flags().Lookup(diffFlagName), diffConfigKey)

	cmd.Flags().IntP(workersFlagName, "w", viper.GetInt(workersConfigKey), "parallel stat calls per snapshot")
	bindFlagToConfig(cmd.Flags().Lookup(workersFlagName), workersConfigKey)
}
