package makerspace

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MakeServer_Go/internal/alert"
	"github.com/osse101/MakeServer_Go/internal/domain"
)

func progress(v float64) *float64 { return &v }

func TestIngestPrinterStatus(t *testing.T) {
	tests := []struct {
		name       string
		update     domain.PrinterWebhookUpdate
		want       IngestResult
		wantAlert  bool
		wantStored bool
	}{
		{
			name:       "valid credential",
			update:     domain.PrinterWebhookUpdate{PrinterName: printerName, APIKey: printerSecret, State: domain.PrinterStatePrinting, Progress: progress(40)},
			want:       IngestAccepted,
			wantStored: true,
		},
		{
			name:      "wrong credential",
			update:    domain.PrinterWebhookUpdate{PrinterName: printerName, APIKey: "guess", State: domain.PrinterStatePrinting},
			want:      IngestRejected,
			wantAlert: true,
		},
		{
			name:      "malformed credential",
			update:    domain.PrinterWebhookUpdate{PrinterName: printerName, APIKey: strings.Repeat("x", 300), State: domain.PrinterStateIdle},
			want:      IngestInvalid,
			wantAlert: true,
		},
		{
			name:      "missing credential",
			update:    domain.PrinterWebhookUpdate{PrinterName: printerName, State: domain.PrinterStateIdle},
			want:      IngestInvalid,
			wantAlert: true,
		},
		{
			name:      "unknown state",
			update:    domain.PrinterWebhookUpdate{PrinterName: printerName, APIKey: printerSecret, State: "on_fire"},
			want:      IngestInvalid,
			wantAlert: true,
		},
		{
			name:      "progress out of range",
			update:    domain.PrinterWebhookUpdate{PrinterName: printerName, APIKey: printerSecret, State: domain.PrinterStatePrinting, Progress: progress(140)},
			want:      IngestInvalid,
			wantAlert: true,
		},
		{
			name:      "unknown printer",
			update:    domain.PrinterWebhookUpdate{PrinterName: "ghost", APIKey: printerSecret, State: domain.PrinterStateIdle},
			want:      IngestUnknown,
			wantAlert: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &mockNotifier{}
			if tt.wantAlert {
				n.On("Notify", mock.Anything, mock.MatchedBy(func(a alert.Alert) bool {
					return strings.HasPrefix(a.Key, AlertKeyPrinterPrefix+string(tt.want)) &&
						a.Severity == alert.SeverityWarning
				})).Once()
			}
			f := newFixture(t, Options{}, n)

			got := f.svc.IngestPrinterStatus(context.Background(), tt.update)
			assert.Equal(t, tt.want, got)

			printers, err := f.svc.GetPrinters(context.Background(), adminKey)
			require.NoError(t, err)
			require.Len(t, printers, 1)
			if tt.wantStored {
				assert.Equal(t, domain.PrinterStatePrinting, printers[0].Status.State)
				require.NotNil(t, printers[0].LastUpdated)
				assert.Equal(t, testNow, *printers[0].LastUpdated)
			} else {
				assert.Empty(t, printers[0].Status.State)
				assert.Nil(t, printers[0].LastUpdated)
			}
			n.AssertExpectations(t)
		})
	}
}

func TestIngestPrinterStatus_NilNotifier(t *testing.T) {
	f := newFixture(t, Options{}, nil)
	got := f.svc.IngestPrinterStatus(context.Background(), domain.PrinterWebhookUpdate{
		PrinterName: printerName, APIKey: "guess", State: domain.PrinterStateIdle,
	})
	assert.Equal(t, IngestRejected, got)
}
