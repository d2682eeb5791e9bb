package makerspace

// ============================================================================
// Log Messages
// ============================================================================

// Authorization
const LogMsgUnauthorized = "API key rejected"

// Checkouts
const (
	LogMsgItemCheckedOut = "Item checked out"
	LogMsgCheckoutFailed = "Checkout failed"
	LogMsgItemReturned   = "Checkout returned"
	LogMsgReturnFailed   = "Checkout return failed"
)

// Users
const (
	LogMsgAuthLevelChanged   = "Auth level changed"
	LogMsgSetAuthLevelFailed = "Set auth level failed"
	LogMsgQuizUpdated        = "Quiz pass updated"
	LogMsgSetQuizFailed      = "Set quiz failed"
)

// Printers
const (
	LogMsgPrinterStatusRecorded = "Printer status recorded"
	LogMsgPrinterUpdateRejected = "Printer status update rejected"
)

// Student storage
const (
	LogMsgStorageTransition       = "Storage slot transition"
	LogMsgStorageTransitionFailed = "Storage slot transition failed"
)

// ============================================================================
// Alerts
// ============================================================================

const (
	AlertKeyPrinterPrefix     = "printer_"
	AlertTitlePrinterRejected = "Printer status update rejected"
)
