// src/utils/http.go
package utils

import (
	"encoding/json"
	"net/http"
)

// JSONErrorResponse is the envelope for all error responses.
type JSONErrorResponse struct {
	Error string `json:"error"`
}

// SendJSON writes v as a JSON response with the given status code.
func SendJSON(w http.ResponseWriter, v interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// SendJSONError writes a JSON error envelope with the given status code.
func SendJSONError(w http.ResponseWriter, message string, statusCode int) {
	SendJSON(w, JSONErrorResponse{Error: message}, statusCode)
}
