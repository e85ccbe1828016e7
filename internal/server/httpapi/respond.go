package httpapi

import (
	"encoding/json"
	"net/http"
)

// Generic error bodies. Auth failures deliberately reveal nothing beyond
// the status code.
const (
	msgUnauthorized  = "Unauthorized"
	msgForbidden     = "Forbidden"
	msgInternalError = "internal server error"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
