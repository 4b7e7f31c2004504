// Package httpjson holds the request/response helpers shared by the
// JSON admin API handlers.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// errorResponse is the uniform error body for every endpoint.
type errorResponse struct {
	Error string `json:"error"`
}

// Write encodes v as the JSON response body with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error body with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, errorResponse{Error: msg})
}

// Decode reads the request body into v, rejecting unknown fields so
// a typo in a payload surfaces as a 400 instead of a silent no-op.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return err
	}
	return nil
}
