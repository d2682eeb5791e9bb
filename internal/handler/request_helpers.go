package handler

import (
	"net/http"
	"net/url"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/MakeServer_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// pathParam returns the decoded chi URL parameter name. chi matches on
// r.URL.RawPath when it is set, leaving segments escaped; otherwise it matches
// on the already decoded r.URL.Path and the value must be used as is, so a
// literal "%41" in an item name or key stays "%41".
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

// bindPathParams fills the string fields of dst tagged `path:"<param>"` from
// the URL and validates dst. dst must be a pointer to a struct.
//
// If this function returns false, a 400 response has already been written and
// the handler should return.
//
// Example usage:
//
//	var p userPath
//	if !bindPathParams(w, r, &p) {
//	    return
//	}
func bindPathParams(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("path")
		if name == "" || v.Field(i).Kind() != reflect.String {
			continue
		}
		v.Field(i).SetString(pathParam(r, name))
	}

	if err := GetValidator().ValidateStruct(dst); err != nil {
		fields := FormatValidationError(err)
		logger.FromContext(r.Context()).Info(LogMsgInvalidPathParams, "fields", fields)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestParam,
			Fields: fields,
		})
		return false
	}
	return true
}

// collegeID converts an id already checked by the college_id validation
func collegeID(s string) uint64 {
	id, _ := strconv.ParseUint(s, 10, 64)
	return id
}

// Path parameter sets, one per route shape

type keyPath struct {
	APIKey string `path:"api_key" validate:"required,max=256"`
}

type userPath struct {
	IDNumber string `path:"id_number" validate:"required,college_id"`
}

type checkoutByNamePath struct {
	IDNumber string `path:"id_number" validate:"required,college_id"`
	ItemName string `path:"item_name" validate:"required,max=200"`
	APIKey   string `path:"api_key" validate:"required,max=256"`
}

type checkoutByUUIDPath struct {
	IDNumber string `path:"id_number" validate:"required,college_id"`
	ItemUUID string `path:"item_uuid" validate:"required,max=100"`
	APIKey   string `path:"api_key" validate:"required,max=256"`
}

type returnCheckoutPath struct {
	EntryID string `path:"entry_id" validate:"required,uuid"`
	APIKey  string `path:"api_key" validate:"required,max=256"`
}

type setAuthLevelPath struct {
	IDNumber  string `path:"id_number" validate:"required,college_id"`
	AuthLevel string `path:"auth_level" validate:"required,auth_level"`
	APIKey    string `path:"api_key" validate:"required,max=256"`
}

type setQuizPath struct {
	IDNumber string `path:"id_number" validate:"required,college_id"`
	QuizName string `path:"quiz_name" validate:"required,max=100"`
	Passed   string `path:"passed" validate:"required,boolean"`
	APIKey   string `path:"api_key" validate:"required,max=256"`
}

// storageSlotPath serves checkout, renew and release. The key is optional on
// renew and release routes.
type storageSlotPath struct {
	IDNumber string `path:"id_number" validate:"required,college_id"`
	SlotID   string `path:"slot_id" validate:"required,max=100"`
	APIKey   string `path:"api_key" validate:"max=256"`
}
