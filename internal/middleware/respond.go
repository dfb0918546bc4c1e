package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody is the JSON body of every error response
type errorBody struct {
	Error string `json:"error"`
}

// WriteError writes a {"error": message} JSON response with the given status
func WriteError(w http.ResponseWriter, status int, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(errorBody{Error: message})
}
