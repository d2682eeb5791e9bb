package handler

// User-facing error messages.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgInvalidRequest      = "Invalid request body"
	ErrMsgInvalidRequestParam = "Invalid request parameters"
	ErrMsgUnauthorized        = "Unauthorized. The API key does not grant this action."
	ErrMsgStoreBusy           = "Server is busy. Please retry shortly."

	// Lookup messages
	ErrMsgUserNotFound     = "User not found"
	ErrMsgItemNotFound     = "Item not found"
	ErrMsgSlotNotFound     = "Storage slot not found"
	ErrMsgCheckoutNotFound = "Checkout entry not found"
	ErrMsgPrinterNotFound  = "Printer not found"

	// State messages
	ErrMsgItemAmbiguous    = "Several items share that name. Check out by uuid instead."
	ErrMsgSlotNotAvailable = "Storage slot is not available"
	ErrMsgSlotNotOwned     = "Storage slot belongs to another user"
	ErrMsgAlreadyReturned  = "Checkout entry was already returned"
)

// Success messages for API responses
const (
	MsgPrinterUpdateReceived = "Status received"
)
