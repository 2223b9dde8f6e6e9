package rosterapi

import (
	"fmt"
	"net/http"

	"github.com/mcoot/puppybowl-roster/internal/model"
)

// ErrorKind classifies why a Players API call failed
type ErrorKind string

const (
	// KindTransport means the request never produced a response
	KindTransport ErrorKind = "transport"
	// KindStatus means the API answered with a non-2xx status or success=false
	KindStatus ErrorKind = "status"
	// KindDecode means the response body was not the expected JSON
	KindDecode ErrorKind = "decode"
	// KindMissingData means the envelope decoded but the expected field was absent
	KindMissingData ErrorKind = "missing_data"
)

// Error is returned by every Client operation that fails
type Error struct {
	Kind       ErrorKind
	Op         string
	StatusCode int
	Name       string // error name reported by the API, e.g. NotFoundError
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		if e.Message != "" {
			return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
	case KindMissingData:
		return fmt.Sprintf("%s: response missing %s", e.Op, e.Message)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports 404 responses as model.ErrPlayerNotFound
func (e *Error) Is(target error) bool {
	return target == model.ErrPlayerNotFound && e.Kind == KindStatus && e.StatusCode == http.StatusNotFound
}
