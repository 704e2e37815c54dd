package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configBaseName   = "hotedit"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	envPrefix        = "HOTEDIT"

	outputFlagName   = "output"
	verboseFlagName  = "verbose"
	logFlagName      = "log"
	parallelFlagName = "parallel"
	matchingFlagName = "matching"
	dryRunFlagName   = "dry-run"

	resolveParallelConfigKey = "resolve.parallel"

	defaultOutputDir       = ".hotedit"
	defaultResolveParallel = 4
)

// Log rotation settings, all under the log section of hotedit.yaml.
const (
	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename = ".hotedit.log"
)

// configLoadErr keeps a config read failure until logging is configured.
var configLoadErr error

func init() {
	configLoadErr = loadConfig(viper.GetViper())
}

// loadConfig registers defaults on v and reads hotedit.yaml if present. A
// missing file is not an error.
func loadConfig(v *viper.Viper) error {
	v.SetConfigType("yaml")
	v.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(outputFlagName, defaultOutputDir)
	v.SetDefault(resolveParallelConfigKey, defaultResolveParallel)

	v.SetDefault(logFilenameKey, defaultLogFilename)
	v.SetDefault(logLevelKey, slog.LevelInfo.String())
	v.SetDefault(logVerboseKey, false)
	v.SetDefault(logMaxSizeKey, 10)
	v.SetDefault(logMaxBackupsKey, 3)
	v.SetDefault(logMaxAgeKey, 28)
	v.SetDefault(logCompressKey, true)

	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// resolveParallelism returns the configured number of concurrent document
// lookups, falling back to the default for non-positive values.
func resolveParallelism(v *viper.Viper) int {
	parallel := v.GetInt(resolveParallelConfigKey)
	if parallel <= 0 {
		slog.Warn("Ignoring non-positive resolve parallelism", "value", parallel, "default", defaultResolveParallel)
		return defaultResolveParallel
	}

	return parallel
}

// parseSlogLevel accepts slog level names with offsets ("debug", "WARN+2"),
// the "warning" alias and numeric levels.
func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	text := strings.TrimSpace(value)
	if text == "" {
		return defaultLevel
	}

	if strings.EqualFold(text, "warning") {
		return slog.LevelWarn
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(text)); err == nil {
		return level
	}

	if n, err := strconv.Atoi(text); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

func newLogWriter(v *viper.Viper, logPath string) io.Writer {
	return &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    v.GetInt(logMaxSizeKey),
		MaxBackups: v.GetInt(logMaxBackupsKey),
		MaxAge:     v.GetInt(logMaxAgeKey),
		Compress:   v.GetBool(logCompressKey),
	}
}

// configureLogger installs the default slog logger writing to a rotated log
// file. verbose forces debug level over the configured one.
func configureLogger(logPath string, verbose bool) {
	v := viper.GetViper()

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	level := parseSlogLevel(v.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(newLogWriter(v, logPath), &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})

	slog.SetDefault(slog.New(handler))

	if configLoadErr != nil {
		slog.Warn("Ignoring unreadable config file", "path", v.ConfigFileUsed(), "error", configLoadErr)
	}
}
