// Package server exposes the console core over HTTP for the browser UI:
// account management, operation history, and passthrough endpoints for every
// provider operation. Handlers follow the constructor-returning-HandlerFunc
// convention and answer with the same {success, data, error} envelope the UI
// already speaks.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/edgedeck/edgedeck/internal/upstream"
)

// GetOrGenerateRequestID retrieves X-Request-ID from header or generates a
// new one. Format: "ui-{uuid}" if generated.
func GetOrGenerateRequestID(r *http.Request) string {
	if requestID := r.Header.Get("X-Request-ID"); requestID != "" {
		return requestID
	}
	return "ui-" + uuid.New().String()
}

// decode reads the request body into v. A malformed body is the client's
// fault; the caller answers 400.
func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// writeData answers a successful call with the enveloped payload.
func writeData(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// writeError maps an error onto the envelope. Classified pipeline errors
// keep their upstream status and carry the feature-limited flag; anything
// else is a plain 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status != 0 {
			status = apiErr.Status
		} else {
			status = http.StatusBadGateway
		}
		body["isFeatureLimited"] = apiErr.FeatureLimited
		if apiErr.Status != 0 {
			body["status"] = apiErr.Status
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeBadRequest answers a malformed client body.
func writeBadRequest(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   "Invalid JSON format: " + err.Error(),
	})
	log.Printf("⚠️ server: bad request body: %v", err)
}
