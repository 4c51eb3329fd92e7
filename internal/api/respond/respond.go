package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/finwise/finwise-server/internal/model"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// WriteError writes a standardized error response
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	response := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Code:    statusCode,
		Message: message,
	}
	WriteJSON(w, statusCode, response)
}

// WriteBadRequest writes a 400 Bad Request response
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteNotFound writes a 404 Not Found response
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// WriteInternalError writes a 500 Internal Server Error response
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}

// WriteServiceError maps a service-layer error onto its HTTP status:
// missing field 400, invalid credentials 401, not found 404, duplicate
// email 409, consistency fault and everything else 500.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case model.IsMissingField(err):
		WriteBadRequest(w, err.Error())
	case model.IsInvalidCredentials(err):
		WriteError(w, http.StatusUnauthorized, err.Error())
	case model.IsNotFound(err):
		WriteNotFound(w, err.Error())
	case model.IsDuplicateEmail(err):
		WriteError(w, http.StatusConflict, err.Error())
	case model.IsConsistencyFault(err):
		WriteInternalError(w, err.Error())
	default:
		WriteInternalError(w, err.Error())
	}
}
