package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/rpupo63/portfolio-cms-backend/errs"
)

// decodeBody reads and JSON-decodes a request body into dst, converting any
// failure into a 400-level ApiErr.
func decodeBody(r *http.Request, dst any) error {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.NewBadRequestError("failed to read request body")
	}

	if err := json.Unmarshal(bodyBytes, dst); err != nil {
		return errs.NewMalformedPayloadError("JSON", err)
	}

	return nil
}

// parseIDParam extracts the ?id=N query parameter. The id must be a positive
// integer; anything else is a validation error, reported before any store
// operation runs.
func parseIDParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, errs.NewMissingRequiredFieldError("id")
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errs.NewInvalidFieldError("id", "must be a positive integer")
	}

	return id, nil
}

// wrapDatabaseError wraps a store error with operation context
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
