package apperrors

import "net/http"

// Error is a domain error with a fixed HTTP status. ErrorCode is an
// optional machine-readable code used only for authentication failures
// so clients can branch on e.g. token-missing vs token-expired.
type Error struct {
	Status    int
	Message   string
	ErrorCode string
}

func (e *Error) Error() string {
	return e.Message
}

func NewBadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func NewUnauthorized(message, errorCode string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message, ErrorCode: errorCode}
}

func NewForbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

func NewInternal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

func NewServiceUnavailable(message string) *Error {
	return &Error{Status: http.StatusServiceUnavailable, Message: message}
}
