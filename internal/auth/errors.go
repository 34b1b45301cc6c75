package auth

import (
	"errors"
	"strings"
)

var (
	ErrDuplicateUsername = errors.New("Username already exists")
	ErrUserNotFound      = errors.New("User not found")
	ErrIncorrectPassword = errors.New("Incorrect password")
	ErrNotLoggedIn       = errors.New("No user logged in")
)

// ValidationError carries every human-readable message collected for a
// single form submission. It is non-fatal: the form stays editable and the
// messages are shown inline.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func validationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
