package errs

import (
	"errors"
	"net/http"
)

// AI assist upstream failures. Each is surfaced distinctly so the admin UI can
// tell a missing credential apart from an upstream rejection or empty output.
var (
	ErrAssistNotConfigured = errors.New("assist service not configured")
	ErrAssistRejected      = errors.New("assist request rejected upstream")
	ErrAssistEmptyOutput   = errors.New("assist returned empty output")
)

func NewAssistNotConfiguredError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrAssistNotConfigured,
		Details:    "Generative model credential is not set",
		Field:      "assist",
	}
}

func NewAssistRejectedError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrAssistRejected,
		Details:    "Upstream model rejected the request",
		Cause:      cause,
	}
}

func NewAssistEmptyOutputError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrAssistEmptyOutput,
		Details:    "Upstream model returned no usable output",
	}
}

// Error Type Checkers
func IsAssistNotConfigured(err error) bool {
	return errors.Is(err, ErrAssistNotConfigured)
}

func IsAssistRejected(err error) bool {
	return errors.Is(err, ErrAssistRejected)
}

func IsAssistEmptyOutput(err error) bool {
	return errors.Is(err, ErrAssistEmptyOutput)
}
