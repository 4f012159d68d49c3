package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxBodyBytes caps inbound JSON bodies read by [ReadJSON].
const DefaultMaxBodyBytes int64 = 1 << 20

var (
	// ErrEmptyBody is returned by [ReadJSON] when the request has no body.
	ErrEmptyBody = errors.New("request body is empty")
	// ErrBodyTooLarge is returned by [ReadJSON] when the body exceeds the limit.
	ErrBodyTooLarge = errors.New("request body is too large")
)

// WriteJSON serializes data to JSON and writes it with the given status code
// and a "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error. On success it returns the number of body bytes written.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
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

// ReadJSON decodes a single JSON value from the request body into dst.
// Bodies larger than maxBytes are rejected with [ErrBodyTooLarge]; a
// non-positive maxBytes means [DefaultMaxBodyBytes].
func ReadJSON(w http.ResponseWriter, r *http.Request, dst any, maxBytes int64) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return ErrBodyTooLarge
		case errors.Is(err, io.EOF):
			return ErrEmptyBody
		default:
			return fmt.Errorf("error decoding request body: %w", err)
		}
	}

	return nil
}
