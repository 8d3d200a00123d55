package songclient

import (
	"fmt"
	"github.com/cockroachdb/errors"
	"net/http"
)

// APIError is a failure envelope returned by the server
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (a *APIError) Error() string {
	return fmt.Sprintf("%s (%d %s)", a.Message, a.StatusCode, a.Code)
}

func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

func IsInvalid(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

func hasStatus(err error, statusCode int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.StatusCode == statusCode
}
