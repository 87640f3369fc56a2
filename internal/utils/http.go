package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxJSONBodyBytes bounds request bodies decoded by [DecodeJSON].
const maxJSONBodyBytes = 4 << 20

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.NewEntryIDsResponse(ids), http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an [ErrorResponse] carrying message and the trace id of
// the request, if the trace middleware installed one.
func WriteError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	_, _ = WriteJSON(w, ErrorResponse{Error: message, TraceID: GetTraceIDFromContext(r.Context())}, statusCode)
}

// DecodeJSON decodes the request body into dst. Unknown fields and trailing
// data are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("error decoding request body: %w", err)
	}
	if decoder.More() {
		return errors.New("error decoding request body: trailing data")
	}

	return nil
}
