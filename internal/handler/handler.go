package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
	"github.com/osse101/DisruptPoints_Go/internal/logger"
)

// respondJSON writes a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body) //nolint:errcheck
	}
}

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps engine failures onto HTTP statuses: unknown
// resources are 404, malformed input is 400, rule violations are 409,
// anything else is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrGuildNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrInventoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrUnknownLocation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotConsumable),
		errors.Is(err, domain.ErrNotReadable),
		errors.Is(err, domain.ErrNotPurchasable),
		errors.Is(err, domain.ErrInventoryFull),
		errors.Is(err, domain.ErrStackLimitExceeded),
		errors.Is(err, domain.ErrQuantityExceedsMax),
		errors.Is(err, domain.ErrItemNotInInventory),
		errors.Is(err, domain.ErrNoAlcohol),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInsufficientEnergy),
		errors.Is(err, domain.ErrGiftLimitExceeded):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError logs an operation failure and writes the mapped
// error response. Internal errors never leak details to the client.
func respondServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	log := logger.FromContext(r.Context())
	status := statusForError(err)

	if status == http.StatusInternalServerError {
		log.Error(operation+" failed", "error", err)
		respondJSON(w, status, ErrorResponse{Error: ErrMsgInternalError})
		return
	}

	log.Warn(operation+" rejected", "error", err)
	respondJSON(w, status, ErrorResponse{Error: err.Error()})
}

// decodeBody decodes a JSON request body, replying 400 on failure.
// Returns false when the request has already been answered.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromContext(r.Context()).Warn("Failed to decode request body", "error", err)
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrMsgInvalidRequest})
		return false
	}
	return true
}

// requireParams checks that every value is non-empty, replying 400
// otherwise. Returns false when the request has already been answered.
func requireParams(w http.ResponseWriter, r *http.Request, pairs map[string]string) bool {
	for name, value := range pairs {
		if value == "" {
			logger.FromContext(r.Context()).Warn("Missing required parameter", "param", name)
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "missing required parameter: " + name})
			return false
		}
	}
	return true
}
