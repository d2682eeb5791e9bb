package makerspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/MakeServer_Go/internal/alert"
	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/logger"
	"github.com/osse101/MakeServer_Go/internal/metrics"
	"github.com/osse101/MakeServer_Go/internal/store"
)

// IngestResult is the internal outcome of a printer status report. It is
// never shown to the printer.
type IngestResult string

const (
	IngestAccepted IngestResult = metrics.ResultOK
	IngestRejected IngestResult = metrics.ResultRejected
	IngestUnknown  IngestResult = metrics.ResultNotFound
	IngestInvalid  IngestResult = metrics.ResultInvalid
	IngestFailed   IngestResult = metrics.ResultError
)

// IngestPrinterStatus records a printer's self-reported status. The update is
// applied only when its embedded credential matches the printer's. Failures
// are logged, counted and raised to operators; the caller is never told.
func (s *service) IngestPrinterStatus(ctx context.Context, update domain.PrinterWebhookUpdate) IngestResult {
	log := logger.FromContext(ctx)

	if err := s.validate.StructCtx(ctx, update); err != nil {
		return s.rejectPrinterUpdate(ctx, update.PrinterName, IngestInvalid, err)
	}

	var p domain.Printer
	err := s.store.Update(ctx, func(tx *store.Tables) error {
		var err error
		p, err = tx.Printers.Apply(update, s.now())
		return err
	})
	switch {
	case err == nil:
		metrics.PrinterUpdates.WithLabelValues(string(IngestAccepted)).Inc()
		log.Debug(LogMsgPrinterStatusRecorded, "printer", p.Name, "state", p.Status.State)
		return IngestAccepted
	case errors.Is(err, domain.ErrPrinterCredential):
		return s.rejectPrinterUpdate(ctx, update.PrinterName, IngestRejected, err)
	case errors.Is(err, domain.ErrPrinterNotFound):
		return s.rejectPrinterUpdate(ctx, update.PrinterName, IngestUnknown, err)
	default:
		return s.rejectPrinterUpdate(ctx, update.PrinterName, IngestFailed, err)
	}
}

// rejectPrinterUpdate runs after the store lock is released
func (s *service) rejectPrinterUpdate(ctx context.Context, printer string, result IngestResult, cause error) IngestResult {
	metrics.PrinterUpdates.WithLabelValues(string(result)).Inc()
	logger.FromContext(ctx).Warn(LogMsgPrinterUpdateRejected, "printer", printer, "result", result, "error", cause)

	if s.notifier != nil && result != IngestFailed {
		s.notifier.Notify(ctx, alert.Alert{
			Key:      fmt.Sprintf("%s%s:%s", AlertKeyPrinterPrefix, result, printer),
			Severity: alert.SeverityWarning,
			Title:    AlertTitlePrinterRejected,
			Message:  cause.Error(),
			Fields:   map[string]string{"printer": printer, "result": string(result)},
		})
	}
	return result
}

// GetPrinters returns the last known status of every printer
func (s *service) GetPrinters(ctx context.Context, apiKey string) ([]domain.Printer, error) {
	var printers []domain.Printer
	err := s.store.View(ctx, func(tx *store.Tables) error {
		if err := s.authorize(ctx, tx, apiKey, adminOnly...); err != nil {
			return err
		}
		printers = tx.Printers.All()
		return nil
	})
	return printers, err
}
