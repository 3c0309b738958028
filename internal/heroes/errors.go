package heroes

import (
	"errors"
	"net/http"
)

// Domain errors for hero operations.
var (
	ErrNotFound   = errors.New("hero not found")
	ErrValidation = errors.New("invalid hero")
	ErrDuplicate  = errors.New("hero already exists")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
