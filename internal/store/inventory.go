package store

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/MakeServer_Go/internal/domain"
)

// Inventory holds items in insertion order with two indexes: by normalised name
// (several units may share one) and by uuid (unique store-wide).
type Inventory struct {
	items  []domain.InventoryItem
	byName map[string][]int
	byUUID map[string]int
}

func newInventory() *Inventory {
	return &Inventory{
		byName: make(map[string][]int),
		byUUID: make(map[string]int),
	}
}

// nameKey normalises names typed at kiosks so composed and decomposed forms match
func nameKey(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Add inserts an item. A uuid already used by another item is rejected.
func (t *Inventory) Add(item domain.InventoryItem) error {
	key := nameKey(item.Name)
	if key == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if item.HasUUID() {
		if _, ok := t.byUUID[*item.UUID]; ok {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateItemUUID, *item.UUID)
		}
	} else {
		item.UUID = nil
	}

	idx := len(t.items)
	t.items = append(t.items, item.Clone())
	t.byName[key] = append(t.byName[key], idx)
	if item.UUID != nil {
		t.byUUID[*item.UUID] = idx
	}
	return nil
}

// ByName resolves name to exactly one item. When several units share the name
// the caller must disambiguate by uuid.
func (t *Inventory) ByName(name string) (domain.InventoryItem, error) {
	idxs := t.byName[nameKey(name)]
	switch len(idxs) {
	case 0:
		return domain.InventoryItem{}, domain.NewNotFound(domain.EntityItem, name)
	case 1:
		return t.items[idxs[0]].Clone(), nil
	default:
		return domain.InventoryItem{}, fmt.Errorf("%w: %q has %d units", domain.ErrItemAmbiguous, name, len(idxs))
	}
}

// ByUUID resolves a uuid to its item
func (t *Inventory) ByUUID(uuid string) (domain.InventoryItem, error) {
	idx, ok := t.byUUID[uuid]
	if !ok {
		return domain.InventoryItem{}, domain.NewNotFound(domain.EntityItem, uuid)
	}
	return t.items[idx].Clone(), nil
}

// Snapshot returns a deep copy of every item in insertion order
func (t *Inventory) Snapshot() []domain.InventoryItem {
	out := make([]domain.InventoryItem, len(t.items))
	for i, item := range t.items {
		out[i] = item.Clone()
	}
	return out
}

// Len returns the number of items
func (t *Inventory) Len() int {
	return len(t.items)
}
