package apiconfig

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bitlance/web/internal/domain"
)

// APIError is returned for every non-2xx response from the marketplace API.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("marketplace api %s: status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("marketplace api %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// Is maps HTTP statuses onto the domain sentinels so callers can use errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case domain.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

// StatusCode extracts the HTTP status from an *APIError anywhere in err's
// chain. It returns 0 when err is not an API error.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
