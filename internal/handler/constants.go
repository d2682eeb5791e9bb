package handler

// URL path parameter names
const (
	ParamIDNumber  = "id_number"
	ParamItemName  = "item_name"
	ParamItemUUID  = "item_uuid"
	ParamEntryID   = "entry_id"
	ParamAuthLevel = "auth_level"
	ParamQuizName  = "quiz_name"
	ParamPassed    = "passed"
	ParamSlotID    = "slot_id"
	ParamAPIKey    = "api_key"
)

// Log messages
const (
	LogMsgEncodeFailed         = "Failed to encode JSON response"
	LogMsgWriteFailed          = "Failed to write response buffer"
	LogMsgInvalidPathParams    = "Invalid path parameters"
	LogMsgPrinterDecodeFailed  = "Failed to decode printer status update"
	LogMsgPrinterIngested      = "Printer status ingested"
	LogMsgReadinessCheckFailed = "Readiness check failed"
)

// Service operation names used in logs
const (
	OpGetInventory    = "Get inventory"
	OpGetCheckoutLog  = "Get checkout log"
	OpCheckoutItem    = "Checkout item"
	OpReturnCheckout  = "Return checkout"
	OpGetQuizzes      = "Get quizzes"
	OpGetAllUsers     = "Get all users"
	OpGetUserInfo     = "Get user info"
	OpSetAuthLevel    = "Set auth level"
	OpSetQuiz         = "Set quiz"
	OpGetPrinters     = "Get printers"
	OpGetUserStorage  = "Get user storage"
	OpGetAllStorage   = "Get all storage"
	OpCheckoutStorage = "Checkout storage slot"
	OpRenewStorage    = "Renew storage slot"
	OpReleaseStorage  = "Release storage slot"
)

// Health check values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreBusy      = "store lock not acquirable"
)

const (
	// RetryAfterSeconds is sent with 503 responses when the store is busy
	RetryAfterSeconds = "1"

	initialBufferSize   = 512
	maxPooledBufferSize = 64 << 10
)
