package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it as the HTTP response body.
//
// It sets the "Content-Type" header to "application/json" and writes the
// provided status code before the body. Every receiver endpoint responds
// through this helper so sync outcomes, status records, and error bodies
// share one shape on the wire.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
//
// Parameters:
//
//	w          - the HTTP response writer to write the response to
//	data       - any value to be serialized as JSON
//	statusCode - HTTP status code to set in the response
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if JSON marshaling fails
//
// Example usage:
//
//	WriteJSON(w, models.SyncResponse{Outcome: models.SyncOutcomeSuccess}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "unknown route"}, http.StatusNotFound)
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
