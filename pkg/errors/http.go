package errors

import "net/http"

// HTTPError is an error that already knows how it should be rendered to the client.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError returns a new HTTPError. A zero statusCode defaults to 400.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewUnauthorizedHTTPError returns a 401 with the given message.
func NewUnauthorizedHTTPError(message string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, message, http.StatusUnauthorized)
}

// NewForbiddenHTTPError returns a 403 with the given message.
func NewForbiddenHTTPError(message string) *HTTPError {
	return NewHTTPError(http.StatusForbidden, message, http.StatusForbidden)
}

func (e *HTTPError) Error() string {
	return e.Message
}
