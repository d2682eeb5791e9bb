package makerspace

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/logger"
	"github.com/osse101/MakeServer_Go/internal/metrics"
	"github.com/osse101/MakeServer_Go/internal/store"
)

// GetInventory returns a copy of the whole inventory. No key is required.
func (s *service) GetInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := s.store.View(ctx, func(tx *store.Tables) error {
		items = tx.Inventory.Snapshot()
		return nil
	})
	return items, err
}

// GetCheckoutLog returns every checkout entry in order
func (s *service) GetCheckoutLog(ctx context.Context, apiKey string) ([]domain.CheckoutLogEntry, error) {
	var entries []domain.CheckoutLogEntry
	err := s.store.View(ctx, func(tx *store.Tables) error {
		if err := s.authorize(ctx, tx, apiKey, checkoutGate...); err != nil {
			return err
		}
		entries = tx.CheckoutLog.All()
		return nil
	})
	return entries, err
}

// CheckoutItemByName loans the item called itemName to the user
func (s *service) CheckoutItemByName(ctx context.Context, userID uint64, itemName, apiKey string) (domain.CheckoutLogEntry, error) {
	return s.checkoutItem(ctx, userID, apiKey, metrics.ByName, itemName, func(tx *store.Tables) (domain.InventoryItem, *string, error) {
		item, err := tx.Inventory.ByName(itemName)
		return item, nil, err
	})
}

// CheckoutItemByUUID loans the physical unit with itemUUID to the user. The
// entry records the uuid.
func (s *service) CheckoutItemByUUID(ctx context.Context, userID uint64, itemUUID, apiKey string) (domain.CheckoutLogEntry, error) {
	return s.checkoutItem(ctx, userID, apiKey, metrics.ByUUID, itemUUID, func(tx *store.Tables) (domain.InventoryItem, *string, error) {
		item, err := tx.Inventory.ByUUID(itemUUID)
		return item, &itemUUID, err
	})
}

type itemResolver func(tx *store.Tables) (domain.InventoryItem, *string, error)

func (s *service) checkoutItem(ctx context.Context, userID uint64, apiKey, by, itemKey string, resolve itemResolver) (domain.CheckoutLogEntry, error) {
	log := logger.FromContext(ctx)

	var entry domain.CheckoutLogEntry
	err := s.store.Update(ctx, func(tx *store.Tables) error {
		if err := s.authorize(ctx, tx, apiKey, checkoutGate...); err != nil {
			return err
		}
		user, err := tx.Users.Get(userID)
		if err != nil {
			return err
		}
		item, pinned, err := resolve(tx)
		if err != nil {
			return err
		}

		entry = domain.NewCheckoutLogEntry(user, item, pinned, s.now())
		tx.CheckoutLog.Append(entry)
		return nil
	})
	if err != nil {
		log.Info(LogMsgCheckoutFailed, "user_id", userID, "by", by, "item", itemKey, "error", err)
		return domain.CheckoutLogEntry{}, err
	}

	metrics.Checkouts.WithLabelValues(by).Inc()
	log.Info(LogMsgItemCheckedOut, "user_id", userID, "item", entry.ItemName, "entry_id", entry.ID)
	return entry, nil
}

// ReturnCheckout marks a pending checkout entry returned
func (s *service) ReturnCheckout(ctx context.Context, entryID uuid.UUID, apiKey string) (domain.CheckoutLogEntry, error) {
	log := logger.FromContext(ctx)

	var entry domain.CheckoutLogEntry
	err := s.store.Update(ctx, func(tx *store.Tables) error {
		if err := s.authorize(ctx, tx, apiKey, checkoutGate...); err != nil {
			return err
		}
		var err error
		entry, err = tx.CheckoutLog.MarkReturned(entryID, s.now())
		return err
	})
	if err != nil {
		log.Info(LogMsgReturnFailed, "entry_id", entryID, "error", err)
		return domain.CheckoutLogEntry{}, err
	}

	metrics.CheckoutsReturned.Inc()
	log.Info(LogMsgItemReturned, "entry_id", entryID, "user_id", entry.CollegeID, "item", entry.ItemName)
	return entry, nil
}
