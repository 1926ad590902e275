package errors

import "fmt"

// PermissionError denies a well-formed request because of the state of
// Subject, such as a disabled account.
type PermissionError struct {
	Code    int    `json:"code"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func NewPermissionError(code int, subject, message string) *PermissionError {
	return &PermissionError{
		Code:    code,
		Subject: subject,
		Message: message,
	}
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Subject, e.Message)
}
