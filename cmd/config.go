package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"autocomment.dev/pkg/autocomment/internal/adapter"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "autocomment"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	noCacheFlagName     = "no-cache"
	excludeFlagName     = "exclude"
	includeFlagName     = "include"
	languageFlagName    = "language"
	verboseFlagName     = "verbose"
	runParallelFlagName = "parallel"

	languageConfigKey    = "language"
	runParallelConfigKey = "run.parallel"
	excludeConfigKey     = "paths.exclude"
	includeConfigKey     = "paths.include"

	uploadDirKey    = "storage.upload_dir"
	commentedDirKey = "storage.commented_dir"
	historyDBKey    = "storage.history_db"

	commentorAddrKey   = "server.commentor_addr"
	filesAddrKey       = "server.files_addr"
	gatewayAddrKey     = "server.gateway_addr"
	commentorURLKey    = "server.commentor_url"
	filesURLKey        = "server.files_url"
	bodyLimitKey       = "server.body_limit"
	rateLimitKey       = "server.rate_limit"
	rateWindowKey      = "server.rate_window"
	shutdownTimeoutKey = "server.shutdown_timeout"
	allowedOriginsKey  = "server.allowed_origins"

	defaultLanguage        = "javascript"
	defaultNoCache         = false
	defaultRunParallel     = 4
	defaultCommentorAddr   = ":5000"
	defaultFilesAddr       = ":5001"
	defaultGatewayAddr     = ":3000"
	defaultCommentorURL    = "http://localhost:5000"
	defaultFilesURL        = "http://localhost:5001"
	defaultBodyLimit       = 1 << 20
	defaultRateLimit       = 120
	defaultRateWindow      = "1m"
	defaultShutdownTimeout = "10s"

	envPrefix = "AUTOCOMMENT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".autocomment.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

func init() {
	loadConfig()
}

func loadConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Debug("config not loaded", "error", err)
		}
	}
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(languageConfigKey, defaultLanguage)
	viper.SetDefault(noCacheFlagName, defaultNoCache)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(excludeConfigKey, adapter.DefaultExcludes)
	viper.SetDefault(includeConfigKey, adapter.DefaultIncludes)

	viper.SetDefault(uploadDirKey, adapter.DefaultUploadDir)
	viper.SetDefault(commentedDirKey, adapter.DefaultCommentedDir)
	viper.SetDefault(historyDBKey, adapter.DefaultHistoryDB)

	viper.SetDefault(commentorAddrKey, defaultCommentorAddr)
	viper.SetDefault(filesAddrKey, defaultFilesAddr)
	viper.SetDefault(gatewayAddrKey, defaultGatewayAddr)
	viper.SetDefault(commentorURLKey, defaultCommentorURL)
	viper.SetDefault(filesURLKey, defaultFilesURL)
	viper.SetDefault(bodyLimitKey, defaultBodyLimit)
	viper.SetDefault(rateLimitKey, defaultRateLimit)
	viper.SetDefault(rateWindowKey, defaultRateWindow)
	viper.SetDefault(shutdownTimeoutKey, defaultShutdownTimeout)
	viper.SetDefault(allowedOriginsKey, []string{})

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs the rotating file logger as the slog default.
// Verbose forces debug level.
func configureLogger(logPath string, verbose bool) *lumberjack.Logger {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	slog.SetDefault(slog.New(handler))

	return logWriter
}
