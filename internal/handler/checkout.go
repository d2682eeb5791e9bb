package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/MakeServer_Go/internal/makerspace"
)

// CheckoutHandler serves the inventory and checkout log routes
type CheckoutHandler struct {
	service makerspace.Service
}

func NewCheckoutHandler(service makerspace.Service) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// HandleGetInventory lists every inventory item
// @Summary Get inventory
// @Description Returns every inventory item. No key required.
// @Tags inventory
// @Produce json
// @Success 200 {array} domain.InventoryItem
// @Failure 503 {object} ErrorResponse
// @Router /inventory [get]
func (h *CheckoutHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetInventory(r.Context())
	if err != nil {
		respondServiceError(w, r, OpGetInventory, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// HandleGetCheckoutLog lists the full checkout log
// @Summary Get checkout log
// @Tags checkouts
// @Produce json
// @Param api_key path string true "Admin or checkout staff key"
// @Success 200 {array} domain.CheckoutLogEntry
// @Failure 401 {object} ErrorResponse
// @Router /checkouts/log/{api_key} [get]
func (h *CheckoutHandler) HandleGetCheckoutLog(w http.ResponseWriter, r *http.Request) {
	var p keyPath
	if !bindPathParams(w, r, &p) {
		return
	}
	entries, err := h.service.GetCheckoutLog(r.Context(), p.APIKey)
	if err != nil {
		respondServiceError(w, r, OpGetCheckoutLog, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// HandleCheckoutByName records a checkout of the item with the given name
// @Summary Check out an item by name
// @Tags checkouts
// @Produce json
// @Param id_number path int true "College id"
// @Param item_name path string true "Item name"
// @Param api_key path string true "Admin or checkout staff key"
// @Success 201 {object} domain.CheckoutLogEntry
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /checkouts/add_entry/{id_number}/{item_name}/{api_key} [post]
func (h *CheckoutHandler) HandleCheckoutByName(w http.ResponseWriter, r *http.Request) {
	var p checkoutByNamePath
	if !bindPathParams(w, r, &p) {
		return
	}
	entry, err := h.service.CheckoutItemByName(r.Context(), collegeID(p.IDNumber), p.ItemName, p.APIKey)
	if err != nil {
		respondServiceError(w, r, OpCheckoutItem, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// HandleCheckoutByUUID records a checkout of one specific unit
// @Summary Check out an item by uuid
// @Tags checkouts
// @Produce json
// @Param id_number path int true "College id"
// @Param item_uuid path string true "Item uuid"
// @Param api_key path string true "Admin or checkout staff key"
// @Success 201 {object} domain.CheckoutLogEntry
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /checkouts/add_entry_uuid/{id_number}/{item_uuid}/{api_key} [post]
func (h *CheckoutHandler) HandleCheckoutByUUID(w http.ResponseWriter, r *http.Request) {
	var p checkoutByUUIDPath
	if !bindPathParams(w, r, &p) {
		return
	}
	entry, err := h.service.CheckoutItemByUUID(r.Context(), collegeID(p.IDNumber), p.ItemUUID, p.APIKey)
	if err != nil {
		respondServiceError(w, r, OpCheckoutItem, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// HandleReturnCheckout marks a checkout entry returned
// @Summary Return a checked out item
// @Tags checkouts
// @Produce json
// @Param entry_id path string true "Checkout entry id"
// @Param api_key path string true "Admin or checkout staff key"
// @Success 201 {object} domain.CheckoutLogEntry
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /checkouts/return/{entry_id}/{api_key} [post]
func (h *CheckoutHandler) HandleReturnCheckout(w http.ResponseWriter, r *http.Request) {
	var p returnCheckoutPath
	if !bindPathParams(w, r, &p) {
		return
	}
	entry, err := h.service.ReturnCheckout(r.Context(), uuid.MustParse(p.EntryID), p.APIKey)
	if err != nil {
		respondServiceError(w, r, OpReturnCheckout, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}
