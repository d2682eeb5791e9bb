package worker

import (
	"context"
	"time"

	"github.com/osse101/MakeServer_Go/internal/alert"
	"github.com/osse101/MakeServer_Go/internal/logger"
	"github.com/osse101/MakeServer_Go/internal/metrics"
)

// AlertJob delivers one alert
type AlertJob struct {
	Alerter alert.Alerter
	Alert   alert.Alert
}

// Process delivers the alert
func (j AlertJob) Process(ctx context.Context) error {
	return j.Alerter.Alert(ctx, j.Alert)
}

// AlertDispatcher hands alerts to the pool so delivery never blocks the caller
type AlertDispatcher struct {
	pool    *Pool
	alerter alert.Alerter
}

// NewAlertDispatcher creates a dispatcher delivering through alerter on pool
func NewAlertDispatcher(pool *Pool, alerter alert.Alerter) *AlertDispatcher {
	return &AlertDispatcher{pool: pool, alerter: alerter}
}

// Notify queues a for delivery. A full queue drops the alert.
func (d *AlertDispatcher) Notify(ctx context.Context, a alert.Alert) {
	if a.At.IsZero() {
		a.At = time.Now()
	}
	if d.pool.TryEnqueue(AlertJob{Alerter: d.alerter, Alert: a}) {
		return
	}
	metrics.AlertsDropped.WithLabelValues(metrics.ReasonQueueFull).Inc()
	logger.FromContext(ctx).Warn(LogMsgAlertQueueFull, "key", a.Key, "queue_len", d.pool.QueueLen())
}
