package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Store metric names
const (
	MetricNameStoreLockWait = "store_lock_wait_seconds"
	MetricNameStoreBusy     = "store_busy_total"
)

// Business metric names
const (
	MetricNameCheckouts          = "checkouts_total"
	MetricNameCheckoutsReturned  = "checkouts_returned_total"
	MetricNameStorageTransitions = "storage_transitions_total"
	MetricNameStorageExpired     = "storage_slots_expired"
	MetricNamePrinterUpdates     = "printer_updates_total"
	MetricNameAuthFailures       = "auth_failures_total"
	MetricNameAlertsSent         = "alerts_sent_total"
	MetricNameAlertsDropped      = "alerts_dropped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Store metric help text
const (
	HelpTextStoreLockWait = "Time spent waiting for exclusive store access"
	HelpTextStoreBusy     = "Operations rejected because the store lock was not acquired in time"
)

// Business metric help text
const (
	HelpTextCheckouts          = "Total number of items checked out"
	HelpTextCheckoutsReturned  = "Total number of checkouts marked returned"
	HelpTextStorageTransitions = "Student storage slot transitions by action and result"
	HelpTextStorageExpired     = "Occupied student storage slots past their rental period"
	HelpTextPrinterUpdates     = "Printer status updates by result"
	HelpTextAuthFailures       = "Rejected API keys by required role"
	HelpTextAlertsSent         = "Operator alerts delivered"
	HelpTextAlertsDropped      = "Operator alerts dropped by throttling or a full queue"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelBy     = "by"
	LabelAction = "action"
	LabelResult = "result"
	LabelRole   = "role"
	LabelReason = "reason"
)

// Label values
const (
	ResultOK          = "ok"
	ResultNotFound    = "not_found"
	ResultUnavailable = "unavailable"
	ResultNotOwned    = "not_owned"
	ResultRejected    = "rejected"
	ResultInvalid     = "invalid"
	ResultError       = "error"

	ByName = "name"
	ByUUID = "uuid"

	ActionCheckout = "checkout"
	ActionRenew    = "renew"
	ActionRelease  = "release"

	ReasonThrottled = "throttled"
	ReasonQueueFull = "queue_full"
	ReasonFailed    = "failed"

	// UnmatchedRoute labels requests that did not match any route
	UnmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LockWaitBuckets covers 10µs to 5s
var LockWaitBuckets = []float64{.00001, .0001, .001, .005, .01, .05, .1, .5, 1, 5}
