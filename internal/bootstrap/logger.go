package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/MakeServer_Go/internal/config"
	"github.com/osse101/MakeServer_Go/internal/logger"
)

// SetupLogger initializes the default logger writing to stdout and to a new
// session file under cfg.LogDir. Older sessions beyond the retention count are
// removed first. The caller must close the returned file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	initLogger(cfg, io.MultiWriter(os.Stdout, logFile))
	return logFile, nil
}

func initLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	addSource := cfg.Environment == logger.EnvironmentDev
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)
	l := logger.InitLoggerWithWriter(loggerConfig, w)

	l.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel())
	l.Info(LogMsgStartingMakeServer,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	// key counts only, never key material
	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"seed_file", cfg.SeedFile,
		"admin_keys", len(cfg.AdminAPIKeys),
		"checkout_keys", len(cfg.CheckoutAPIKeys),
		"storage_keys", len(cfg.StorageAPIKeys),
		"rental_period", cfg.StorageRentalPeriod,
		"gate_renew_release", cfg.StorageGateRenewRelease,
		"discord_alerts", cfg.DiscordEnabled())
	return l
}

// cleanupLogs removes the oldest session logs so that at most keep remain
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
