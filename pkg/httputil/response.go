// Package httputil provides the uniform response envelope and request
// parsing helpers shared by every SpoolTrack HTTP handler.
package httputil

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response wrapper. Success and Error are mutually
// exclusive: a successful response never carries an error, and a failed
// response never carries data. Error is either a plain string or a
// field-error map (map of field name to messages).
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// UnauthorizedMessage is the generic message returned for both missing
// sessions (401) and insufficient roles (403). The status code carries the
// distinction; the body deliberately does not.
const UnauthorizedMessage = "Unauthorized"

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// WriteData writes a success envelope with the given status and payload
func WriteData(w http.ResponseWriter, status int, data interface{}) error {
	return WriteJSON(w, status, Envelope{Success: true, Data: data})
}

// WriteSuccess writes a 200 success envelope
func WriteSuccess(w http.ResponseWriter, data interface{}) error {
	return WriteData(w, http.StatusOK, data)
}

// WriteCreated writes a 201 success envelope
func WriteCreated(w http.ResponseWriter, data interface{}) error {
	return WriteData(w, http.StatusCreated, data)
}

// WriteDeleted writes the delete response: 200 with success and no data
func WriteDeleted(w http.ResponseWriter) error {
	return WriteJSON(w, http.StatusOK, Envelope{Success: true})
}

// WriteFailure writes a failure envelope. errValue is a string for plain
// errors or a field-error map for validation failures.
func WriteFailure(w http.ResponseWriter, status int, errValue interface{}) error {
	return WriteJSON(w, status, Envelope{Success: false, Error: errValue})
}

// WriteUnauthorized writes a 401 failure with the generic unauthorized message
func WriteUnauthorized(w http.ResponseWriter) {
	WriteFailure(w, http.StatusUnauthorized, UnauthorizedMessage)
}

// WriteForbidden writes a 403 failure with the generic unauthorized message
func WriteForbidden(w http.ResponseWriter) {
	WriteFailure(w, http.StatusForbidden, UnauthorizedMessage)
}

// WriteNotFound writes a 404 failure with a resource-specific message
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteFailure(w, http.StatusNotFound, message)
}

// WriteValidationFailed writes a 400 failure carrying the field-error map
func WriteValidationFailed(w http.ResponseWriter, fieldErrors interface{}) {
	WriteFailure(w, http.StatusBadRequest, fieldErrors)
}

// WriteUnexpected writes a 500 failure exposing the underlying message.
// Both downstream service failures and body-parse failures land here.
func WriteUnexpected(w http.ResponseWriter, err error) {
	WriteFailure(w, http.StatusInternalServerError, err.Error())
}
