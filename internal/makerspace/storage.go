package makerspace

import (
	"context"
	"errors"

	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/logger"
	"github.com/osse101/MakeServer_Go/internal/metrics"
	"github.com/osse101/MakeServer_Go/internal/store"
)

// GetStudentStorageForUser returns the slots the user holds
func (s *service) GetStudentStorageForUser(ctx context.Context, userID uint64) ([]domain.StorageSlotView, error) {
	var views []domain.StorageSlotView
	err := s.store.View(ctx, func(tx *store.Tables) error {
		if !tx.Users.Exists(userID) {
			return domain.NewNotFound(domain.EntityUser, userID)
		}
		views = slotViews(tx.StudentStorage.ForUser(userID))
		return nil
	})
	return views, err
}

// GetStudentStorageForAll returns every slot
func (s *service) GetStudentStorageForAll(ctx context.Context, apiKey string) ([]domain.StorageSlotView, error) {
	var views []domain.StorageSlotView
	err := s.store.View(ctx, func(tx *store.Tables) error {
		if err := s.authorize(ctx, tx, apiKey, storageGate...); err != nil {
			return err
		}
		views = slotViews(tx.StudentStorage.All())
		return nil
	})
	return views, err
}

// CheckoutStorageSlot assigns a free slot to the user
func (s *service) CheckoutStorageSlot(ctx context.Context, userID uint64, slotID, apiKey string) (domain.StorageSlotView, error) {
	return s.transitionSlot(ctx, metrics.ActionCheckout, userID, slotID, apiKey, true,
		func(tx *store.Tables) (domain.StorageSlot, error) {
			return tx.StudentStorage.Checkout(slotID, userID, s.now(), s.opts.RentalPeriod)
		})
}

// RenewStorageSlot extends the user's rental of a slot by one period
func (s *service) RenewStorageSlot(ctx context.Context, userID uint64, slotID, apiKey string) (domain.StorageSlotView, error) {
	return s.transitionSlot(ctx, metrics.ActionRenew, userID, slotID, apiKey, s.opts.GateRenewRelease,
		func(tx *store.Tables) (domain.StorageSlot, error) {
			return tx.StudentStorage.Renew(slotID, userID, s.now(), s.opts.RentalPeriod)
		})
}

// ReleaseStorageSlot frees a slot held by the user. Releasing a free slot succeeds.
func (s *service) ReleaseStorageSlot(ctx context.Context, userID uint64, slotID, apiKey string) (domain.StorageSlotView, error) {
	return s.transitionSlot(ctx, metrics.ActionRelease, userID, slotID, apiKey, s.opts.GateRenewRelease,
		func(tx *store.Tables) (domain.StorageSlot, error) {
			return tx.StudentStorage.Release(slotID, userID)
		})
}

// ExpiredStorageSlots lists occupied slots whose rental has run out
func (s *service) ExpiredStorageSlots(ctx context.Context) ([]domain.StorageSlot, error) {
	var slots []domain.StorageSlot
	err := s.store.View(ctx, func(tx *store.Tables) error {
		slots = tx.StudentStorage.Expired(s.now())
		return nil
	})
	return slots, err
}

type slotTransition func(tx *store.Tables) (domain.StorageSlot, error)

// transitionSlot runs one slot transition in a single unit of work: the
// optional role gate, then the user lookup, then the transition itself
func (s *service) transitionSlot(ctx context.Context, action string, userID uint64, slotID, apiKey string, gated bool, apply slotTransition) (domain.StorageSlotView, error) {
	log := logger.FromContext(ctx)

	var slot domain.StorageSlot
	err := s.store.Update(ctx, func(tx *store.Tables) error {
		if gated {
			if err := s.authorize(ctx, tx, apiKey, storageGate...); err != nil {
				return err
			}
		}
		if !tx.Users.Exists(userID) {
			return domain.NewNotFound(domain.EntityUser, userID)
		}
		var err error
		slot, err = apply(tx)
		return err
	})

	metrics.StorageTransitions.WithLabelValues(action, transitionResult(err)).Inc()
	if err != nil {
		log.Info(LogMsgStorageTransitionFailed, "action", action, "user_id", userID, "slot_id", slotID, "error", err)
		return domain.StorageSlotView{}, err
	}

	log.Info(LogMsgStorageTransition, "action", action, "user_id", userID, "slot_id", slotID, "expires_at", slot.ExpiresAt)
	return domain.NewStorageSlotView(slot), nil
}

func slotViews(slots []domain.StorageSlot) []domain.StorageSlotView {
	out := make([]domain.StorageSlotView, len(slots))
	for i, sl := range slots {
		out[i] = domain.NewStorageSlotView(sl)
	}
	return out
}

func transitionResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, domain.ErrUnauthorized):
		return metrics.ResultRejected
	case errors.Is(err, domain.ErrSlotNotFound), errors.Is(err, domain.ErrUserNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, domain.ErrSlotNotAvailable):
		return metrics.ResultUnavailable
	case errors.Is(err, domain.ErrSlotNotOwned):
		return metrics.ResultNotOwned
	default:
		return metrics.ResultError
	}
}
