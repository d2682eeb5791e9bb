package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/mocks"
)

func TestStorageHandler_Transitions(t *testing.T) {
	owner := uint64(7)
	occupied := domain.NewStorageSlotView(domain.StorageSlot{ID: "A1", Owner: &owner})
	free := domain.NewStorageSlotView(domain.StorageSlot{ID: "A1"})

	tests := []struct {
		name           string
		method         string
		params         map[string]string
		err            error
		view           domain.StorageSlotView
		call           func(*StorageHandler) http.HandlerFunc
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Checkout",
			method:         "CheckoutStorageSlot",
			params:         map[string]string{ParamIDNumber: "7", ParamSlotID: "A1", ParamAPIKey: "storage-key"},
			view:           occupied,
			call:           func(h *StorageHandler) http.HandlerFunc { return h.HandleCheckout },
			expectedStatus: http.StatusCreated,
			expectedBody:   `"state":"occupied"`,
		},
		{
			name:           "Checkout of occupied slot",
			method:         "CheckoutStorageSlot",
			params:         map[string]string{ParamIDNumber: "8", ParamSlotID: "A1", ParamAPIKey: "storage-key"},
			err:            domain.ErrSlotNotAvailable,
			call:           func(h *StorageHandler) http.HandlerFunc { return h.HandleCheckout },
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgSlotNotAvailable,
		},
		{
			name:           "Renew without key",
			method:         "RenewStorageSlot",
			params:         map[string]string{ParamIDNumber: "7", ParamSlotID: "A1"},
			view:           occupied,
			call:           func(h *StorageHandler) http.HandlerFunc { return h.HandleRenew },
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Release by non owner",
			method:         "ReleaseStorageSlot",
			params:         map[string]string{ParamIDNumber: "8", ParamSlotID: "A1"},
			err:            domain.ErrSlotNotOwned,
			call:           func(h *StorageHandler) http.HandlerFunc { return h.HandleRelease },
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgSlotNotOwned,
		},
		{
			name:           "Release",
			method:         "ReleaseStorageSlot",
			params:         map[string]string{ParamIDNumber: "7", ParamSlotID: "A1", ParamAPIKey: "storage-key"},
			view:           free,
			call:           func(h *StorageHandler) http.HandlerFunc { return h.HandleRelease },
			expectedStatus: http.StatusCreated,
			expectedBody:   `"state":"free"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockService(t)
			svc.On(tt.method, mock.Anything, collegeID(tt.params[ParamIDNumber]), tt.params[ParamSlotID], tt.params[ParamAPIKey]).
				Return(tt.view, tt.err)

			w := httptest.NewRecorder()
			tt.call(NewStorageHandler(svc))(w, newRequest(http.MethodPost, "/", tt.params))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestStorageHandler_Reads(t *testing.T) {
	svc := mocks.NewMockService(t)
	svc.On("GetStudentStorageForUser", mock.Anything, uint64(7)).Return([]domain.StorageSlotView{}, nil)
	svc.On("GetStudentStorageForAll", mock.Anything, "storage-key").Return([]domain.StorageSlotView{}, nil)
	h := NewStorageHandler(svc)

	w := httptest.NewRecorder()
	h.HandleGetForUser(w, newRequest(http.MethodGet, "/", map[string]string{ParamIDNumber: "7"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = httptest.NewRecorder()
	h.HandleGetAll(w, newRequest(http.MethodGet, "/", map[string]string{ParamAPIKey: "storage-key"}))
	assert.Equal(t, http.StatusOK, w.Code)
}
