package worker

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/osse101/MakeServer_Go/internal/alert"
	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/logger"
	"github.com/osse101/MakeServer_Go/internal/metrics"
)

// ExpiredSlotLister lists occupied slots whose rental has run out
type ExpiredSlotLister interface {
	ExpiredStorageSlots(ctx context.Context) ([]domain.StorageSlot, error)
}

// Notifier queues an operator alert
type Notifier interface {
	Notify(ctx context.Context, a alert.Alert)
}

// StorageExpiryJob reports expired storage rentals. It does not release them;
// freeing a slot stays an explicit staff action.
type StorageExpiryJob struct {
	lister   ExpiredSlotLister
	notifier Notifier
}

// NewStorageExpiryJob creates the job. notifier may be nil.
func NewStorageExpiryJob(lister ExpiredSlotLister, notifier Notifier) *StorageExpiryJob {
	return &StorageExpiryJob{lister: lister, notifier: notifier}
}

// Process scans once
func (j *StorageExpiryJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	slots, err := j.lister.ExpiredStorageSlots(ctx)
	if err != nil {
		log.Warn(LogMsgStorageExpiryFailed, "error", err)
		return fmt.Errorf("storage expiry scan: %w", err)
	}

	metrics.StorageExpired.Set(float64(len(slots)))
	for _, s := range slots {
		owner := ""
		if s.Owner != nil {
			owner = strconv.FormatUint(*s.Owner, 10)
		}
		log.Info(LogMsgStorageSlotExpired, "slot_id", s.ID, "owner", owner, "expires_at", s.ExpiresAt)

		if j.notifier != nil {
			j.notifier.Notify(ctx, alert.Alert{
				Key:      AlertKeyStorageExpiredPrefix + s.ID,
				Severity: alert.SeverityInfo,
				Title:    AlertTitleStorageExpired,
				Message:  fmt.Sprintf("Slot %s rental expired at %s", s.ID, s.ExpiresAt.Format(time.RFC3339)),
				Fields:   map[string]string{"slot": s.ID, "owner": owner},
			})
		}
	}
	log.Debug(LogMsgStorageExpiryScan, "expired", len(slots))
	return nil
}
