package switchbot

import (
	"errors"
	"fmt"
)

// ErrMissingToken is returned when no API token was configured
var ErrMissingToken = errors.New("missing SwitchBot API token")

// StatusSuccess is the envelope status code of a successful call
const StatusSuccess = 100

// HTTPError is returned when the API answers with a non-2xx HTTP status
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Body)
}

// APIError is returned when the JSON envelope carries a status code other than 100
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d %s", e.StatusCode, e.Message)
}
