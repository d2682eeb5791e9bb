package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgUserNotFound     = "user not found"
	ErrMsgItemNotFound     = "item not found"
	ErrMsgItemAmbiguous    = "item name matches more than one item"
	ErrMsgSlotNotFound     = "slot not found"
	ErrMsgCheckoutNotFound = "checkout not found"
	ErrMsgPrinterNotFound  = "printer not found"

	// State errors
	ErrMsgSlotNotAvailable = "slot not available"
	ErrMsgSlotNotOwned     = "slot not owned by user"
	ErrMsgAlreadyReturned  = "checkout already returned"

	// Uniqueness errors
	ErrMsgUserExists        = "user already exists"
	ErrMsgDuplicateItemUUID = "item uuid already in use"
	ErrMsgDuplicateSlot     = "slot already exists"
	ErrMsgDuplicatePrinter  = "printer already registered"

	// Auth errors
	ErrMsgUnauthorized      = "unauthorized"
	ErrMsgPrinterCredential = "invalid printer credential"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Concurrency errors
	ErrMsgStoreBusy = "store busy"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound     = errors.New(ErrMsgUserNotFound)
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrItemAmbiguous    = errors.New(ErrMsgItemAmbiguous)
	ErrSlotNotFound     = errors.New(ErrMsgSlotNotFound)
	ErrCheckoutNotFound = errors.New(ErrMsgCheckoutNotFound)
	ErrPrinterNotFound  = errors.New(ErrMsgPrinterNotFound)

	ErrSlotNotAvailable = errors.New(ErrMsgSlotNotAvailable)
	ErrSlotNotOwned     = errors.New(ErrMsgSlotNotOwned)
	ErrAlreadyReturned  = errors.New(ErrMsgAlreadyReturned)

	ErrUserExists        = errors.New(ErrMsgUserExists)
	ErrDuplicateItemUUID = errors.New(ErrMsgDuplicateItemUUID)
	ErrDuplicateSlot     = errors.New(ErrMsgDuplicateSlot)
	ErrDuplicatePrinter  = errors.New(ErrMsgDuplicatePrinter)

	ErrUnauthorized      = errors.New(ErrMsgUnauthorized)
	ErrPrinterCredential = errors.New(ErrMsgPrinterCredential)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrStoreBusy is retryable: the store lock could not be acquired in time
	ErrStoreBusy = errors.New(ErrMsgStoreBusy)
)

// NotFoundError names the entity and key that failed to resolve.
// It unwraps to the entity's sentinel error.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	switch e.Entity {
	case EntityUser:
		return ErrUserNotFound
	case EntityItem:
		return ErrItemNotFound
	case EntitySlot:
		return ErrSlotNotFound
	case EntityCheckout:
		return ErrCheckoutNotFound
	case EntityPrinter:
		return ErrPrinterNotFound
	default:
		return nil
	}
}

// NewNotFound builds a NotFoundError
func NewNotFound(entity string, key any) error {
	return &NotFoundError{Entity: entity, Key: fmt.Sprint(key)}
}

// UnauthorizedError records the roles a request needed. It unwraps to ErrUnauthorized.
type UnauthorizedError struct {
	Required []Role
}

func (e *UnauthorizedError) Error() string {
	if len(e.Required) == 0 {
		return ErrMsgUnauthorized
	}
	names := make([]string, 0, len(e.Required))
	for _, r := range e.Required {
		names = append(names, r.String())
	}
	return fmt.Sprintf("%s: requires one of [%s]", ErrMsgUnauthorized, strings.Join(names, ", "))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
