package client

import (
	"fmt"
	"net/http"
)

// Error codes for failures that carry no HTTP status.
const (
	CodeNetwork = "NETWORK_ERROR"
	CodeParse   = "PARSE_ERROR"
)

// Error is returned by every Client call that fails. Code is NETWORK_ERROR
// when no response arrived, HTTP_<status> for a non-2xx response, or
// PARSE_ERROR when a response body could not be decoded.
type Error struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports whether the server answered 404.
func (e *Error) NotFound() bool {
	return e.Status == http.StatusNotFound
}

func httpCode(status int) string {
	return fmt.Sprintf("HTTP_%d", status)
}
