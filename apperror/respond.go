package apperror

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status.
// A nil data value writes only the status, avoiding a literal "null" body.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// The status line is already gone, so all we can do is log.
			log.Printf("Failed to encode JSON response: %v", err)
		}
	}
}

// WriteError converts any error into a standardized error response. Errors
// that are not already AppErrors are wrapped as internal errors so every
// failure leaves the API in the same JSON shape.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := FromError(err)
	if !ok {
		appErr = NewInternalError("an unexpected error occurred", err)
	}
	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Printf("Error processing request %s %s: %v", r.Method, r.URL.Path, appErr)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
