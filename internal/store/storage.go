package store

import (
	"fmt"
	"time"

	"github.com/osse101/MakeServer_Go/internal/domain"
)

// StudentStorage is the locker table, kept in the order slots were added
type StudentStorage struct {
	slots map[string]*domain.StorageSlot
	order []string
}

func newStudentStorage() *StudentStorage {
	return &StudentStorage{slots: make(map[string]*domain.StorageSlot)}
}

// Add registers a free slot
func (t *StudentStorage) Add(id string) error {
	if id == "" {
		return fmt.Errorf("%w: slot id is required", domain.ErrInvalidInput)
	}
	if _, ok := t.slots[id]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateSlot, id)
	}
	t.slots[id] = &domain.StorageSlot{ID: id}
	t.order = append(t.order, id)
	return nil
}

// Get returns a copy of the slot
func (t *StudentStorage) Get(id string) (domain.StorageSlot, error) {
	s, ok := t.slots[id]
	if !ok {
		return domain.StorageSlot{}, domain.NewNotFound(domain.EntitySlot, id)
	}
	return s.Clone(), nil
}

// Checkout moves a free slot to occupied by user, expiring after period
func (t *StudentStorage) Checkout(id string, user uint64, now time.Time, period time.Duration) (domain.StorageSlot, error) {
	s, ok := t.slots[id]
	if !ok {
		return domain.StorageSlot{}, domain.NewNotFound(domain.EntitySlot, id)
	}
	if s.State() != domain.SlotStateFree {
		return domain.StorageSlot{}, fmt.Errorf("%w: %s is %s", domain.ErrSlotNotAvailable, id, s.State())
	}

	expires := now.Add(period)
	s.Owner = &user
	s.CheckedOutAt = &now
	s.ExpiresAt = &expires
	s.Renewals = 0
	return s.Clone(), nil
}

// Renew extends an occupied slot owned by user by another period, counted from
// the later of now and the current expiry
func (t *StudentStorage) Renew(id string, user uint64, now time.Time, period time.Duration) (domain.StorageSlot, error) {
	s, ok := t.slots[id]
	if !ok {
		return domain.StorageSlot{}, domain.NewNotFound(domain.EntitySlot, id)
	}
	if s.State() != domain.SlotStateOccupied {
		return domain.StorageSlot{}, fmt.Errorf("%w: %s is %s", domain.ErrSlotNotAvailable, id, s.State())
	}
	if !s.IsOwnedBy(user) {
		return domain.StorageSlot{}, fmt.Errorf("%w: %s", domain.ErrSlotNotOwned, id)
	}

	base := now
	if s.ExpiresAt != nil && s.ExpiresAt.After(now) {
		base = *s.ExpiresAt
	}
	expires := base.Add(period)
	s.ExpiresAt = &expires
	s.Renewals++
	return s.Clone(), nil
}

// Release frees a slot owned by user. Releasing a slot that is already free is
// a no-op, so repeating a release never fails differently.
func (t *StudentStorage) Release(id string, user uint64) (domain.StorageSlot, error) {
	s, ok := t.slots[id]
	if !ok {
		return domain.StorageSlot{}, domain.NewNotFound(domain.EntitySlot, id)
	}
	if s.State() == domain.SlotStateFree {
		return s.Clone(), nil
	}
	if !s.IsOwnedBy(user) {
		return domain.StorageSlot{}, fmt.Errorf("%w: %s", domain.ErrSlotNotOwned, id)
	}

	s.Owner = nil
	s.CheckedOutAt = nil
	s.ExpiresAt = nil
	s.Renewals = 0
	return s.Clone(), nil
}

// ForUser returns the slots owned by user
func (t *StudentStorage) ForUser(user uint64) []domain.StorageSlot {
	return t.filter(func(s *domain.StorageSlot) bool { return s.IsOwnedBy(user) })
}

// All returns every slot
func (t *StudentStorage) All() []domain.StorageSlot {
	return t.filter(func(*domain.StorageSlot) bool { return true })
}

// Expired returns occupied slots whose rental ran out at or before now
func (t *StudentStorage) Expired(now time.Time) []domain.StorageSlot {
	return t.filter(func(s *domain.StorageSlot) bool { return s.IsExpired(now) })
}

func (t *StudentStorage) filter(keep func(*domain.StorageSlot) bool) []domain.StorageSlot {
	out := []domain.StorageSlot{}
	for _, id := range t.order {
		if s := t.slots[id]; keep(s) {
			out = append(out, s.Clone())
		}
	}
	return out
}
