package store

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"sort"
	"time"

	"github.com/osse101/MakeServer_Go/internal/domain"
)

type printerRecord struct {
	printer    domain.Printer
	credential [sha256.Size]byte
}

// Printers is the printer table. Only the digest of each printer's credential is kept.
type Printers struct {
	byName map[string]*printerRecord
}

func newPrinters() *Printers {
	return &Printers{byName: make(map[string]*printerRecord)}
}

// Register adds a printer that authenticates its webhook updates with credential
func (t *Printers) Register(p domain.Printer, credential string) error {
	if p.Name == "" || credential == "" {
		return fmt.Errorf("%w: printer name and credential are required", domain.ErrInvalidInput)
	}
	if _, ok := t.byName[p.Name]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicatePrinter, p.Name)
	}
	t.byName[p.Name] = &printerRecord{
		printer:    p.Clone(),
		credential: sha256.Sum256([]byte(credential)),
	}
	return nil
}

// Apply records a status update after checking its embedded credential. The
// record is untouched unless the credential matches.
func (t *Printers) Apply(u domain.PrinterWebhookUpdate, now time.Time) (domain.Printer, error) {
	rec, ok := t.byName[u.PrinterName]
	if !ok {
		return domain.Printer{}, domain.NewNotFound(domain.EntityPrinter, u.PrinterName)
	}
	got := sha256.Sum256([]byte(u.APIKey))
	if subtle.ConstantTimeCompare(got[:], rec.credential[:]) != 1 {
		return domain.Printer{}, fmt.Errorf("%w: %s", domain.ErrPrinterCredential, u.PrinterName)
	}

	rec.printer.Status = u.Status()
	rec.printer.LastUpdated = &now
	return rec.printer.Clone(), nil
}

// Get returns a copy of one printer
func (t *Printers) Get(name string) (domain.Printer, error) {
	rec, ok := t.byName[name]
	if !ok {
		return domain.Printer{}, domain.NewNotFound(domain.EntityPrinter, name)
	}
	return rec.printer.Clone(), nil
}

// All returns every printer ordered by name
func (t *Printers) All() []domain.Printer {
	out := make([]domain.Printer, 0, len(t.byName))
	for _, rec := range t.byName {
		out = append(out, rec.printer.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
