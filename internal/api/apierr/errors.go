package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/puppybowl-roster/internal/model"
)

// APIError is the error object of a failed envelope
type APIError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope written for failed requests
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
	Data    any      `json:"data"`
}

// Error names reported to clients
const (
	NameBadRequest = "BadRequestError"
	NameValidation = "ValidationError"
	NameNotFound   = "NotFoundError"
	NameInternal   = "InternalServerError"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error envelope to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Success: false, Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{NameNotFound, "Player not found"}}
	case errors.Is(err, model.ErrInvalidDraft):
		return &httpError{http.StatusBadRequest, APIError{NameValidation, "Player is missing required fields"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{NameInternal, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{NameBadRequest, message}}
}

// NewValidationError creates a validation error
func NewValidationError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{NameValidation, message}}
}

// NewPlayerNotFoundError creates a not found error naming the player id
func NewPlayerNotFoundError(id model.PlayerID) error {
	return &httpError{http.StatusNotFound, APIError{NameNotFound, "Player " + string(id) + " not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{NameInternal, "Internal server error"}}
}
