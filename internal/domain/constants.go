package domain

import "time"

// Role names as they appear in config and fixture files
const (
	RoleNameAdmin               = "admin"
	RoleNameCheckoutStaff       = "checkout_staff"
	RoleNameStudentStorageStaff = "student_storage_staff"
)

// Auth level names as they appear on the wire
const (
	AuthLevelNameStudent       = "student"
	AuthLevelNameCheckoutStaff = "checkout_staff"
	AuthLevelNameStorageStaff  = "storage_staff"
	AuthLevelNameAdmin         = "admin"
)

// Slot states
const (
	SlotStateFree     SlotState = "free"
	SlotStateOccupied SlotState = "occupied"
)

// Printer states reported by the webhook
const (
	PrinterStateIdle     = "idle"
	PrinterStatePrinting = "printing"
	PrinterStatePaused   = "paused"
	PrinterStateError    = "error"
	PrinterStateOffline  = "offline"
)

// Entity names used in NotFoundError
const (
	EntityUser     = "user"
	EntityItem     = "item"
	EntitySlot     = "slot"
	EntityCheckout = "checkout"
	EntityPrinter  = "printer"
)

// Default rental period for a student storage slot
const DefaultStorageRentalPeriod = 30 * 24 * time.Hour
