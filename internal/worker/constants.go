package worker

import "time"

// ============================================================================
// Pool Defaults
// ============================================================================

const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 64
	DefaultJobTimeout  = 30 * time.Second
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// LogMsgWorkerJobPanicked is logged when a job panics; the worker survives
const LogMsgWorkerJobPanicked = "Worker job panicked"

// ============================================================================
// Log Messages - Alerts
// ============================================================================

const (
	LogMsgAlertQueueFull  = "Alert queue full, dropping alert"
	LogMsgAlertPoolClosed = "Worker pool stopped, dropping alert"
)

// ============================================================================
// Log Messages - Storage Expiry
// ============================================================================

const (
	LogMsgStorageExpiryScan   = "Storage expiry scan completed"
	LogMsgStorageSlotExpired  = "Storage slot rental expired"
	LogMsgStorageExpiryFailed = "Storage expiry scan failed"
)

// Alert keys and titles
const (
	AlertKeyStorageExpiredPrefix = "storage_expired:"
	AlertTitleStorageExpired     = "Storage rental expired"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
