// Package cmd provides the root command and CLI setup for mkaudit.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mkaudit.dev/pkg/mkaudit/internal/adapter"
	"mkaudit.dev/pkg/mkaudit/internal/controller"
	"mkaudit.dev/pkg/mkaudit/internal/domain"
	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

var fsAdapter adapter.FSAdapter = adapter.NewLocalFSAdapter()
var traceStore adapter.TraceStore = adapter.NewJSONTraceStore()
var reportStore adapter.ReportStore = adapter.NewReportStore()

// workflow is built on first use so that flags and config are already
// parsed. Tests replace it with a mock.
var workflow domain.Workflow

// stopSignals releases the signal handler installed for the running command.
var stopSignals context.CancelFunc = func() {}

const rootLongDescription = `mkaudit checks the dependency information of an incremental build.

It touches each input recorded by a traced clean build, rebuilds, and compares
the outputs that were regenerated with the outputs the trace says depend on the
input. Outputs rebuilt without a recorded dependency are over-builds (+);
dependents that were not rebuilt are missing dependencies (-).

Run it from a CMake project root whose build directory was configured for
Make or Ninja.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "mkaudit",
		Short:             "Incremental build dependency auditor",
		Long:              rootLongDescription,
		SilenceUsage:      true,
		PersistentPreRunE: setupCommand,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			stopSignals()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP(outputFlagName, "o", viper.GetString(outputFlagName), "directory for audit reports")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.StringP(projectFlagName, "C", viper.GetString(projectConfigKey), "project root containing the build directory")
	bindFlagToConfig(flags.Lookup(projectFlagName), projectConfigKey)

	flags.String(buildDirFlagName, viper.GetString(buildDirConfigKey), "build directory (default <project>/build)")
	bindFlagToConfig(flags.Lookup(buildDirFlagName), buildDirConfigKey)

	flags.String(backendFlagName, viper.GetString(backendConfigKey), "force the build backend (make or ninja)")
	bindFlagToConfig(flags.Lookup(backendFlagName), backendConfigKey)

	flags.StringP(traceFlagName, "t", viper.GetString(traceConfigKey), "trace file written by the tracer")
	bindFlagToConfig(flags.Lookup(traceFlagName), traceConfigKey)

	flags.String(tracerFlagName, viper.GetString(tracerConfigKey), "tracer executable, looked up on PATH")
	bindFlagToConfig(flags.Lookup(tracerFlagName), tracerConfigKey)

	flags.Duration(timeoutFlagName, viper.GetDuration(timeoutConfigKey), "abort a single build step after this long (0 disables)")
	bindFlagToConfig(flags.Lookup(timeoutFlagName), timeoutConfigKey)

	flags.String(uiFlagName, viper.GetString(uiFlagName), "output mode: auto, simple or tui")
	bindFlagToConfig(flags.Lookup(uiFlagName), uiFlagName)

	flags.BoolP(verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.String(logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// setupCommand configures logging, installs the interrupt handler and builds
// the workflow for the command about to run.
func setupCommand(cmd *cobra.Command, _ []string) error {
	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	if configReadErr != nil {
		slog.Warn("Failed to read config file, using defaults", "file", viper.ConfigFileUsed(), "error", configReadErr)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	stopSignals = stop

	cmd.SetContext(ctx)

	if workflow == nil {
		workflow = newWorkflow(cmd, stop)
	}

	return nil
}

func newWorkflow(cmd *cobra.Command, interrupt func()) domain.Workflow {
	ui := controller.NewUI(cmd, controller.Kind(viper.GetString(uiFlagName)), controller.Options{
		ShowDiff:  viper.GetBool(diffConfigKey),
		Interrupt: interrupt,
	})

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewLocalCommandRunner(viper.GetDuration(timeoutConfigKey)),
		traceStore,
		reportStore,
		ui,
	)
}

// projectArgs collects the project layout shared by every command.
func projectArgs() domain.ProjectArgs {
	return domain.ProjectArgs{
		Project:  m.Path(viper.GetString(projectConfigKey)),
		BuildDir: m.Path(viper.GetString(buildDirConfigKey)),
		Backend:  domain.BackendKind(viper.GetString(backendConfigKey)),
		Trace:    absPath(viper.GetString(traceConfigKey)),
		Tracer:   resolveTracer(viper.GetString(tracerConfigKey)),
		Workers:  viper.GetInt(workersConfigKey),
	}
}

// absPath anchors path at the working directory since builds run elsewhere.
func absPath(path string) m.Path {
	if path == "" {
		return ""
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return m.Path(path)
	}

	return m.Path(abs)
}

// resolveTracer finds the tracer on PATH and canonicalises it the way traced
// paths are, so the tracer binary matches its own trace record. An unresolved
// tracer is only an error for commands that run a traced build.
func resolveTracer(name string) m.Path {
	if name == "" {
		return ""
	}

	path, err := exec.LookPath(name)
	if err != nil {
		slog.Debug("Tracer not found", "tracer", name, "error", err)
		return ""
	}

	canonical, err := fsAdapter.Canonical(path)
	if err != nil {
		slog.Debug("Failed to canonicalise tracer", "tracer", path, "error", err)
		return absPath(path)
	}

	return canonical
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	stopSignals()

	if err != nil {
		os.Exit(1)
	}
}
