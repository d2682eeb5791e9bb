package domain

import "time"

// SlotState is the lifecycle state of a storage slot
type SlotState string

// StorageSlot is a student storage locker owned by at most one user
type StorageSlot struct {
	ID           string     `json:"id" yaml:"id"`
	Owner        *uint64    `json:"owner" yaml:"-"`
	CheckedOutAt *time.Time `json:"checked_out_at" yaml:"-"`
	ExpiresAt    *time.Time `json:"expires_at" yaml:"-"`
	Renewals     int        `json:"renewals" yaml:"-"`
}

// State derives the slot state from its owner
func (s *StorageSlot) State() SlotState {
	if s.Owner == nil {
		return SlotStateFree
	}
	return SlotStateOccupied
}

// IsOwnedBy reports whether userID currently owns the slot
func (s *StorageSlot) IsOwnedBy(userID uint64) bool {
	return s.Owner != nil && *s.Owner == userID
}

// IsExpired reports whether an occupied slot's rental has run out
func (s *StorageSlot) IsExpired(now time.Time) bool {
	return s.Owner != nil && s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}

// Clone returns a deep copy
func (s StorageSlot) Clone() StorageSlot {
	s.Owner = clonePtr(s.Owner)
	s.CheckedOutAt = clonePtr(s.CheckedOutAt)
	s.ExpiresAt = clonePtr(s.ExpiresAt)
	return s
}

// StorageSlotView is the JSON shape returned to clients
type StorageSlotView struct {
	StorageSlot
	State SlotState `json:"state"`
}

// NewStorageSlotView wraps a slot copy with its derived state
func NewStorageSlotView(s StorageSlot) StorageSlotView {
	s = s.Clone()
	return StorageSlotView{StorageSlot: s, State: s.State()}
}
