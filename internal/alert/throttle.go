package alert

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MakeServer_Go/internal/logger"
	"github.com/osse101/MakeServer_Go/internal/metrics"
)

// Throttled drops alerts whose key was already delivered within the cooldown
type Throttled struct {
	next Alerter

	// mu makes the check and the reservation of a key one step
	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

// NewThrottled wraps next. A non-positive cooldown or size falls back to the defaults.
func NewThrottled(next Alerter, cooldown time.Duration, size int) *Throttled {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	if size <= 0 {
		size = DefaultThrottleSize
	}
	return &Throttled{
		next: next,
		seen: expirable.NewLRU[string, struct{}](size, nil, cooldown),
	}
}

// Alert forwards a unless its key is cooling down. The key is reserved before
// delivery so concurrent alerts with the same key are sent once. A failed
// delivery releases the key, so the next occurrence is retried.
func (t *Throttled) Alert(ctx context.Context, a Alert) error {
	if a.Key != "" && !t.reserve(a.Key) {
		metrics.AlertsDropped.WithLabelValues(metrics.ReasonThrottled).Inc()
		logger.FromContext(ctx).Debug(LogMsgAlertThrottled, "key", a.Key)
		return nil
	}

	if err := t.next.Alert(ctx, a); err != nil {
		if a.Key != "" {
			t.seen.Remove(a.Key)
		}
		metrics.AlertsDropped.WithLabelValues(metrics.ReasonFailed).Inc()
		return err
	}
	metrics.AlertsSent.Inc()
	return nil
}

func (t *Throttled) reserve(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.seen.Get(key); ok {
		return false
	}
	t.seen.Add(key, struct{}{})
	return true
}
