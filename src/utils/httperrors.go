package utils

import (
	"encoding/json"
	"net/http"
)

// HTTPError carries an HTTP status code alongside the message exposed to API
// consumers.
type HTTPError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(code int, message string) error {
	return &HTTPError{Code: code, Message: message}
}

func BadRequest(message string) error {
	return NewHTTPError(http.StatusBadRequest, message)
}

func NotFound(message string) error {
	return NewHTTPError(http.StatusNotFound, message)
}

func Conflict(message string) error {
	return NewHTTPError(http.StatusConflict, message)
}

func InternalServerError(message string) error {
	return NewHTTPError(http.StatusInternalServerError, message)
}

// WriteError sends err as a JSON response, defaulting unknown error types to a
// 500 so internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	httpErr, ok := err.(*HTTPError)
	if !ok {
		httpErr = &HTTPError{Code: http.StatusInternalServerError, Message: "Internal Server Error"}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": httpErr.Message})
}
