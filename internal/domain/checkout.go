package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutLogEntry records one item loaned to one user. It is never modified
// after creation except to set ReturnedAt once.
type CheckoutLogEntry struct {
	ID           uuid.UUID  `json:"id"`
	CollegeID    uint64     `json:"college_id"`
	ItemName     string     `json:"item_name"`
	ItemUUID     *string    `json:"item_uuid"`
	CheckedOutAt time.Time  `json:"timestamp_out"`
	ReturnedAt   *time.Time `json:"timestamp_in"`
}

// NewCheckoutLogEntry creates an entry for user taking item. itemUUID is set only
// when the caller pinned a specific unit.
func NewCheckoutLogEntry(user User, item InventoryItem, itemUUID *string, now time.Time) CheckoutLogEntry {
	return CheckoutLogEntry{
		ID:           uuid.New(),
		CollegeID:    user.CollegeID,
		ItemName:     item.Name,
		ItemUUID:     clonePtr(itemUUID),
		CheckedOutAt: now,
	}
}

// IsPending reports whether the item has not been returned yet
func (e *CheckoutLogEntry) IsPending() bool {
	return e.ReturnedAt == nil
}

// Clone returns a deep copy
func (e CheckoutLogEntry) Clone() CheckoutLogEntry {
	e.ItemUUID = clonePtr(e.ItemUUID)
	e.ReturnedAt = clonePtr(e.ReturnedAt)
	return e
}
