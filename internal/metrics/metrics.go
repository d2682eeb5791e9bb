package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Store Metrics
var (
	StoreLockWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameStoreLockWait,
			Help:    HelpTextStoreLockWait,
			Buckets: LockWaitBuckets,
		},
	)

	StoreBusy = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStoreBusy,
			Help: HelpTextStoreBusy,
		},
	)
)

// Business Metrics
var (
	Checkouts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCheckouts,
			Help: HelpTextCheckouts,
		},
		[]string{LabelBy},
	)

	CheckoutsReturned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCheckoutsReturned,
			Help: HelpTextCheckoutsReturned,
		},
	)

	StorageTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStorageTransitions,
			Help: HelpTextStorageTransitions,
		},
		[]string{LabelAction, LabelResult},
	)

	StorageExpired = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStorageExpired,
			Help: HelpTextStorageExpired,
		},
	)

	PrinterUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePrinterUpdates,
			Help: HelpTextPrinterUpdates,
		},
		[]string{LabelResult},
	)

	AuthFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAuthFailures,
			Help: HelpTextAuthFailures,
		},
		[]string{LabelRole},
	)

	AlertsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAlertsSent,
			Help: HelpTextAlertsSent,
		},
	)

	AlertsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAlertsDropped,
			Help: HelpTextAlertsDropped,
		},
		[]string{LabelReason},
	)
)
