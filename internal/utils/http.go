package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const contentTypeJSON = "application/json"

// WriteJSON marshals data and writes it with the given status code and
// "Content-Type: application/json". The body is written without a trailing
// newline, so equal payloads always produce byte-identical responses.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
//
//	WriteJSON(w, models.NewHealthResponse(), http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
