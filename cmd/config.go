package cmd

import (
	"cmp"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"mkaudit.dev/pkg/mkaudit/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mkaudit"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName     = "output"
	projectFlagName    = "project"
	buildDirFlagName   = "build-dir"
	backendFlagName    = "backend"
	traceFlagName      = "trace"
	tracerFlagName     = "tracer"
	timeoutFlagName    = "build-timeout"
	uiFlagName         = "ui"
	verboseFlagName    = "verbose"
	logFileFlagName    = "log-file"
	workersFlagName    = "workers"
	cleanBuildFlagName = "clean-build"
	limitFlagName      = "limit"
	diffFlagName       = "diff"
	formatFlagName     = "format"
	ignoreFlagName     = "ignore-prefix"

	projectConfigKey    = "project"
	buildDirConfigKey   = "build_dir"
	backendConfigKey    = "backend"
	traceConfigKey      = "trace"
	tracerConfigKey     = "tracer.path"
	timeoutConfigKey    = "build.timeout"
	workersConfigKey    = "snapshot.workers"
	ignoreConfigKey     = "query.ignore_prefixes"
	formatConfigKey     = "query.format"
	cleanBuildConfigKey = "fuzz.clean_build"
	limitConfigKey      = "fuzz.limit"
	diffConfigKey       = "fuzz.diff"

	defaultReportsDir = ".mkaudit-reports"
	defaultProject    = "."
	defaultTrace      = "/tmp/mkcheck"
	defaultTracer     = "mkcheck"
	defaultUI         = "auto"
	defaultFormat     = "text"

	envPrefix = "MKAUDIT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"
	logFormatKey     = "log.format"
	logSourceKey     = "log.source"

	defaultLogFilename   = ".mkaudit.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
	defaultLogFormat     = "text"
	defaultLogSource     = true
)

var globalLogger *slog.Logger

// configReadErr holds a config file that exists but could not be read. It is
// logged once the logger is configured.
var configReadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(projectConfigKey, defaultProject)
	viper.SetDefault(buildDirConfigKey, "")
	viper.SetDefault(backendConfigKey, "")
	viper.SetDefault(traceConfigKey, defaultTrace)
	viper.SetDefault(tracerConfigKey, defaultTracer)
	viper.SetDefault(timeoutConfigKey, "0s")
	viper.SetDefault(workersConfigKey, domain.DefaultSnapshotWorkers)
	viper.SetDefault(ignoreConfigKey, domain.DefaultIgnorePrefixes)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(cleanBuildConfigKey, false)
	viper.SetDefault(limitConfigKey, 0)
	viper.SetDefault(diffConfigKey, false)
	viper.SetDefault(uiFlagName, defaultUI)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
	viper.SetDefault(logFormatKey, defaultLogFormat)
	viper.SetDefault(logSourceKey, defaultLogSource)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configReadErr = err
		}
	}
}

// logLevelFrom reads a log.level value. Names are case-insensitive and take
// slog offsets such as "info+2"; plain integers are raw slog levels.
func logLevelFrom(value string, fallback slog.Level) slog.Level {
	value = strings.TrimSpace(value)

	switch {
	case value == "":
		return fallback
	case strings.EqualFold(value, "warning"):
		return slog.LevelWarn
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err == nil {
		return level
	}

	if n, err := strconv.Atoi(value); err == nil {
		return slog.Level(n)
	}

	return fallback
}

// newLogHandler builds the handler selected by log.format.
func newLogHandler(w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: viper.GetBool(logSourceKey),
		Level:     level,
	}

	if strings.EqualFold(viper.GetString(logFormatKey), "json") {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

// configureLogger points the global slog logger at a rotating log file.
// An empty logPath falls back to log.filename; verbose forces debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = cmp.Or(strings.TrimSpace(viper.GetString(logFilenameKey)), defaultLogFilename)
	}

	level := slog.LevelDebug
	if !verbose {
		level = logLevelFrom(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	rotating := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	globalLogger = slog.New(newLogHandler(rotating, level)).With("pid", os.Getpid())
	slog.SetDefault(globalLogger)
}
