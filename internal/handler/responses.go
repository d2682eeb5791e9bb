package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the status and message it maps to
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err, "status", status)
	} else {
		log.Info(op+" refused", "error", err, "status", status)
	}
	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", RetryAfterSeconds)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// message safe to show callers. Lookup failures name the missing key.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var notFound *domain.NotFoundError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgUnauthorized
	case errors.Is(err, domain.ErrStoreBusy):
		return http.StatusServiceUnavailable, ErrMsgStoreBusy
	case errors.As(err, &notFound):
		return http.StatusBadRequest, notFound.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, ErrMsgUserNotFound
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, ErrMsgItemNotFound
	case errors.Is(err, domain.ErrSlotNotFound):
		return http.StatusBadRequest, ErrMsgSlotNotFound
	case errors.Is(err, domain.ErrCheckoutNotFound):
		return http.StatusBadRequest, ErrMsgCheckoutNotFound
	case errors.Is(err, domain.ErrPrinterNotFound):
		return http.StatusBadRequest, ErrMsgPrinterNotFound
	case errors.Is(err, domain.ErrItemAmbiguous):
		return http.StatusBadRequest, ErrMsgItemAmbiguous
	case errors.Is(err, domain.ErrSlotNotAvailable):
		return http.StatusBadRequest, ErrMsgSlotNotAvailable
	case errors.Is(err, domain.ErrSlotNotOwned):
		return http.StatusBadRequest, ErrMsgSlotNotOwned
	case errors.Is(err, domain.ErrAlreadyReturned):
		return http.StatusBadRequest, ErrMsgAlreadyReturned
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
