package response

import (
	"errors"
)

// Error carries an HTTP status with a message that is safe to show clients.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func NewError(code int, message string) error {
	return &Error{Code: code, Message: message}
}
