package protocol

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized indicates the credentials or tokens were rejected.
	ErrUnauthorized = errors.New("anylist: unauthorized")

	// ErrNotFound indicates the requested list, item or recipe does not exist.
	ErrNotFound = errors.New("anylist: not found")

	// ErrPremiumRequired indicates the operation needs a premium account.
	ErrPremiumRequired = errors.New("anylist: premium subscription required")

	// ErrNoRefreshToken indicates a refresh was needed but no refresh token
	// is held, so the session cannot be renewed.
	ErrNoRefreshToken = errors.New("anylist: no refresh token")
)

// StatusError is returned for any non-2xx response. It matches the
// sentinel errors above via errors.Is so callers can classify failures
// without inspecting status codes.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
}

var _ error = (*StatusError)(nil)

func (e *StatusError) Error() string {
	return fmt.Sprintf("anylist: %s %s: %s", e.Method, e.Path, e.Status)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrPremiumRequired:
		return e.StatusCode == http.StatusPaymentRequired
	}
	return false
}

// statusError builds a StatusError from a response.
func statusError(method, path string, resp *http.Response) error {
	return &StatusError{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}
}
