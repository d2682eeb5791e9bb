// Package alert delivers operator notifications out-of-band from request handling.
package alert

import (
	"context"
	"log/slog"
	"time"

	"github.com/osse101/MakeServer_Go/internal/logger"
)

// Severity of an alert
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Alert is one operator notification. Key groups repeats of the same condition
// for throttling, e.g. "printer_credential:prusa-1".
type Alert struct {
	Key      string
	Severity Severity
	Title    string
	Message  string
	Fields   map[string]string
	At       time.Time
}

// Alerter delivers alerts
type Alerter interface {
	Alert(ctx context.Context, a Alert) error
}

// LogAlerter writes alerts to the structured log. It is the fallback when no
// Discord webhook is configured.
type LogAlerter struct{}

// NewLogAlerter creates a LogAlerter
func NewLogAlerter() *LogAlerter {
	return &LogAlerter{}
}

// Alert logs a at a level matching its severity
func (l *LogAlerter) Alert(ctx context.Context, a Alert) error {
	attrs := []any{"key", a.Key, "title", a.Title, "message", a.Message}
	for k, v := range a.Fields {
		attrs = append(attrs, k, v)
	}

	log := logger.FromContext(ctx)
	switch a.Severity {
	case SeverityError:
		log.Error(LogMsgAlert, attrs...)
	case SeverityWarning:
		log.Warn(LogMsgAlert, attrs...)
	default:
		log.Log(ctx, slog.LevelInfo, LogMsgAlert, attrs...)
	}
	return nil
}

// Multi fans an alert out to several alerters and returns the first error
type Multi []Alerter

// Alert delivers a to every alerter, even after a failure
func (m Multi) Alert(ctx context.Context, a Alert) error {
	var first error
	for _, al := range m {
		if err := al.Alert(ctx, a); err != nil && first == nil {
			first = err
		}
	}
	return first
}
