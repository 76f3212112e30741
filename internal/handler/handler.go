package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"products-api/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps the size of a decoded request body.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	writeErrorDetails(w, status, message, "", logger)
}

// writeErrorDetails writes an error response carrying diagnostic details.
func writeErrorDetails(w http.ResponseWriter, status int, message, details string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("error", message).Str("details", details).Int("status", status).Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{Error: message, Details: details})
}

// decodeJSON decodes the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// productID parses the {id} route parameter.
// Positive ids too large for the id column cannot exist and yield
// ErrProductNotFound; anything else unparseable yields ErrInvalidProductID.
func productID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
			return 0, model.ErrProductNotFound
		}
		return 0, model.ErrInvalidProductID
	}
	if id <= 0 {
		return 0, model.ErrInvalidProductID
	}
	if id > model.MaxProductID {
		return 0, model.ErrProductNotFound
	}
	return id, nil
}

// writeIDError maps a productID failure to its response.
func writeIDError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	if errors.Is(err, model.ErrProductNotFound) {
		writeError(w, http.StatusNotFound, model.ErrProductNotFound.Message, logger)
		return
	}
	writeError(w, http.StatusBadRequest, model.ErrInvalidProductID.Message, logger)
}
