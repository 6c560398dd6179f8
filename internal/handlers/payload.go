package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// ErrorResponse is the JSON error body shared by all endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// decodeAndValidate decodes the JSON request body into object and, if the
// payload implements validation.Validatable, validates it.
func decodeAndValidate(r *http.Request, object any) error {
	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	v, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}
	return nil
}
