package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/logger"
	"github.com/osse101/MakeServer_Go/internal/makerspace"
	"github.com/osse101/MakeServer_Go/internal/metrics"
)

// PrinterHandler serves printer webhook and status routes
type PrinterHandler struct {
	service makerspace.Service
}

func NewPrinterHandler(service makerspace.Service) *PrinterHandler {
	return &PrinterHandler{service: service}
}

// HandleUpdateStatus ingests a printer's self-reported status. The response is
// 201 whatever happens to the update so a printer cannot probe credentials.
// @Summary Printer status webhook
// @Description The body carries the printer's own credential. Always answers 201.
// @Tags printers
// @Accept json
// @Produce json
// @Param update body domain.PrinterWebhookUpdate true "Status update"
// @Success 201 {object} SuccessResponse
// @Router /printers/update_status [post]
func (h *PrinterHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var update domain.PrinterWebhookUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		metrics.PrinterUpdates.WithLabelValues(metrics.ResultInvalid).Inc()
		logger.FromContext(r.Context()).Warn(LogMsgPrinterDecodeFailed, "error", err)
	} else {
		result := h.service.IngestPrinterStatus(r.Context(), update)
		logger.FromContext(r.Context()).Debug(LogMsgPrinterIngested, "printer", update.PrinterName, "result", result)
	}
	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgPrinterUpdateReceived})
}

// HandleGetPrinters lists every printer with its last reported status
// @Summary Get printers
// @Tags printers
// @Produce json
// @Param api_key path string true "Admin key"
// @Success 200 {array} domain.Printer
// @Failure 401 {object} ErrorResponse
// @Router /printers/{api_key} [get]
func (h *PrinterHandler) HandleGetPrinters(w http.ResponseWriter, r *http.Request) {
	var p keyPath
	if !bindPathParams(w, r, &p) {
		return
	}
	printers, err := h.service.GetPrinters(r.Context(), p.APIKey)
	if err != nil {
		respondServiceError(w, r, OpGetPrinters, err)
		return
	}
	respondJSON(w, http.StatusOK, printers)
}
