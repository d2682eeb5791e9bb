package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/makerspace"
	"github.com/osse101/MakeServer_Go/internal/mocks"
)

func TestHandleUpdateStatus_AlwaysCreated(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*mocks.MockService)
	}{
		{
			name: "Accepted",
			body: `{"printer_name":"prusa-1","api_key":"secret","state":"printing","progress":12.5}`,
			setupMocks: func(m *mocks.MockService) {
				m.On("IngestPrinterStatus", mock.Anything, mock.MatchedBy(func(u domain.PrinterWebhookUpdate) bool {
					return u.PrinterName == "prusa-1" && u.Progress != nil && *u.Progress == 12.5
				})).Return(makerspace.IngestAccepted)
			},
		},
		{
			name: "Rejected credential",
			body: `{"printer_name":"prusa-1","api_key":"wrong","state":"idle"}`,
			setupMocks: func(m *mocks.MockService) {
				m.On("IngestPrinterStatus", mock.Anything, mock.Anything).Return(makerspace.IngestRejected)
			},
		},
		{
			name: "Undecodable body",
			body: `{"printer_name":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockService(t)
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}

			req := httptest.NewRequest(http.MethodPost, "/printers/update_status", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			NewPrinterHandler(svc).HandleUpdateStatus(w, req)

			assert.Equal(t, http.StatusCreated, w.Code)
			assert.NotContains(t, w.Body.String(), "error")
		})
	}
}

func TestHandleGetPrinters(t *testing.T) {
	svc := mocks.NewMockService(t)
	svc.On("GetPrinters", mock.Anything, "admin-key").Return([]domain.Printer{{Name: "prusa-1"}}, nil)

	w := httptest.NewRecorder()
	NewPrinterHandler(svc).HandleGetPrinters(w, newRequest(http.MethodGet, "/", map[string]string{ParamAPIKey: "admin-key"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "prusa-1")
	assert.NotContains(t, w.Body.String(), "api_key")
}
