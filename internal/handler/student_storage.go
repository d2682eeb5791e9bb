package handler

import (
	"context"
	"net/http"

	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/makerspace"
)

// StorageHandler serves the student storage routes
type StorageHandler struct {
	service makerspace.Service
}

func NewStorageHandler(service makerspace.Service) *StorageHandler {
	return &StorageHandler{service: service}
}

type slotTransition func(ctx context.Context, userID uint64, slotID, apiKey string) (domain.StorageSlotView, error)

// HandleGetForUser lists the slots a user holds
// @Summary Get a user's storage slots
// @Description No key required.
// @Tags storage
// @Produce json
// @Param id_number path int true "College id"
// @Success 200 {array} domain.StorageSlotView
// @Failure 400 {object} ErrorResponse
// @Router /student_storage/user/{id_number} [get]
func (h *StorageHandler) HandleGetForUser(w http.ResponseWriter, r *http.Request) {
	var p userPath
	if !bindPathParams(w, r, &p) {
		return
	}
	slots, err := h.service.GetStudentStorageForUser(r.Context(), collegeID(p.IDNumber))
	if err != nil {
		respondServiceError(w, r, OpGetUserStorage, err)
		return
	}
	respondJSON(w, http.StatusOK, slots)
}

// HandleGetAll lists every storage slot
// @Summary Get all storage slots
// @Tags storage
// @Produce json
// @Param api_key path string true "Admin or storage staff key"
// @Success 200 {array} domain.StorageSlotView
// @Failure 401 {object} ErrorResponse
// @Router /student_storage/all/{api_key} [get]
func (h *StorageHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	var p keyPath
	if !bindPathParams(w, r, &p) {
		return
	}
	slots, err := h.service.GetStudentStorageForAll(r.Context(), p.APIKey)
	if err != nil {
		respondServiceError(w, r, OpGetAllStorage, err)
		return
	}
	respondJSON(w, http.StatusOK, slots)
}

// HandleCheckout assigns a free slot to a user
// @Summary Check out a storage slot
// @Tags storage
// @Produce json
// @Param id_number path int true "College id"
// @Param slot_id path string true "Slot id"
// @Param api_key path string true "Admin or storage staff key"
// @Success 201 {object} domain.StorageSlotView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /student_storage/add_entry/{id_number}/{slot_id}/{api_key} [post]
func (h *StorageHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, OpCheckoutStorage, h.service.CheckoutStorageSlot)
}

// HandleRenew extends the user's rental of a slot
// @Summary Renew a storage slot
// @Description The key is only checked when renew and release are gated.
// @Tags storage
// @Produce json
// @Param id_number path int true "College id"
// @Param slot_id path string true "Slot id"
// @Success 201 {object} domain.StorageSlotView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /student_storage/renew/{id_number}/{slot_id} [post]
func (h *StorageHandler) HandleRenew(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, OpRenewStorage, h.service.RenewStorageSlot)
}

// HandleRelease frees the user's slot
// @Summary Release a storage slot
// @Description Releasing a free slot succeeds without change.
// @Tags storage
// @Produce json
// @Param id_number path int true "College id"
// @Param slot_id path string true "Slot id"
// @Success 201 {object} domain.StorageSlotView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /student_storage/release/{id_number}/{slot_id} [post]
func (h *StorageHandler) HandleRelease(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, OpReleaseStorage, h.service.ReleaseStorageSlot)
}

func (h *StorageHandler) transition(w http.ResponseWriter, r *http.Request, op string, apply slotTransition) {
	var p storageSlotPath
	if !bindPathParams(w, r, &p) {
		return
	}
	slot, err := apply(r.Context(), collegeID(p.IDNumber), p.SlotID, p.APIKey)
	if err != nil {
		respondServiceError(w, r, op, err)
		return
	}
	respondJSON(w, http.StatusCreated, slot)
}
