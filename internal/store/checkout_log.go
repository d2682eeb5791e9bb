package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MakeServer_Go/internal/domain"
)

// CheckoutLog is the append-only ordered checkout sequence
type CheckoutLog struct {
	entries []domain.CheckoutLogEntry
	byID    map[uuid.UUID]int
}

func newCheckoutLog() *CheckoutLog {
	return &CheckoutLog{byID: make(map[uuid.UUID]int)}
}

// Append adds an entry at the end of the log
func (t *CheckoutLog) Append(e domain.CheckoutLogEntry) {
	t.byID[e.ID] = len(t.entries)
	t.entries = append(t.entries, e.Clone())
}

// MarkReturned sets the return time of a pending entry
func (t *CheckoutLog) MarkReturned(id uuid.UUID, at time.Time) (domain.CheckoutLogEntry, error) {
	idx, ok := t.byID[id]
	if !ok {
		return domain.CheckoutLogEntry{}, domain.NewNotFound(domain.EntityCheckout, id)
	}
	e := &t.entries[idx]
	if !e.IsPending() {
		return domain.CheckoutLogEntry{}, fmt.Errorf("%w: %s", domain.ErrAlreadyReturned, id)
	}
	e.ReturnedAt = &at
	return e.Clone(), nil
}

// All returns a copy of the whole log in order
func (t *CheckoutLog) All() []domain.CheckoutLogEntry {
	return t.filter(func(*domain.CheckoutLogEntry) bool { return true })
}

// ForUser returns every entry for the user in order
func (t *CheckoutLog) ForUser(id uint64) []domain.CheckoutLogEntry {
	return t.filter(func(e *domain.CheckoutLogEntry) bool { return e.CollegeID == id })
}

// PendingForUser returns the user's entries that have not been returned
func (t *CheckoutLog) PendingForUser(id uint64) []domain.CheckoutLogEntry {
	return t.filter(func(e *domain.CheckoutLogEntry) bool { return e.CollegeID == id && e.IsPending() })
}

// Len returns the number of entries
func (t *CheckoutLog) Len() int {
	return len(t.entries)
}

func (t *CheckoutLog) filter(keep func(*domain.CheckoutLogEntry) bool) []domain.CheckoutLogEntry {
	out := []domain.CheckoutLogEntry{}
	for i := range t.entries {
		if keep(&t.entries[i]) {
			out = append(out, t.entries[i].Clone())
		}
	}
	return out
}
