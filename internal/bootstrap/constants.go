package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat sorts lexically in creation order
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	LogFileNamePattern = "session_%s.log"
	LogFileExtension   = ".log"

	// LogFileRetentionCount is the number of older session logs kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingMakeServer  = "Starting MakeServer"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Application Wiring
// =============================================================================

const (
	// JobStorageExpiry is the scheduler name of the expired-locker sweep
	JobStorageExpiry = "storage_expiry"

	// WorkerJobTimeout bounds one background job, such as a Discord webhook call
	WorkerJobTimeout = 10 * time.Second

	KeyLabelAdminEnv    = "env:admin"
	KeyLabelCheckoutEnv = "env:checkout"
	KeyLabelStorageEnv  = "env:storage"
)

const (
	LogMsgStateSeeded          = "State seeded"
	LogMsgNoSeedFile           = "No seed file configured, starting with empty state"
	LogMsgAlertsDiscord        = "Discord alerts enabled"
	LogMsgAlertsLogOnly        = "Discord alerts disabled, alerts are logged only"
	LogMsgApplicationAssembled = "Application assembled"

	ErrMsgSeedFailed     = "failed to seed state"
	ErrMsgGrantEnvKey    = "failed to register api key from environment"
	ErrMsgDiscordAlerter = "failed to create discord alerter"
	ErrMsgNoAdminKey     = "no admin api key configured: set ADMIN_API_KEYS or add an admin key to the seed file"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingScheduler    = "Stopping scheduler..."
	LogMsgDrainingWorkers      = "Draining worker pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
