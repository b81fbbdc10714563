package service

import (
	"errors"
	"strings"
)

// ErrUserExists is returned by signup when the email is already registered.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials is returned by login for an unknown email or a
// wrong password. One sentinel covers both so responses cannot be used
// to probe which emails are registered.
var ErrInvalidCredentials = errors.New("email or password is incorrect")

// ErrUnknownDog is returned when an adoption application references a dog
// that does not exist.
var ErrUnknownDog = errors.New("dog not found")

// ValidationError reports missing or malformed request fields. Validation
// runs before any hashing, lookup or persistence call; a ValidationError
// guarantees zero writes happened.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}

// newMissingFieldsError builds a ValidationError for absent required fields.
func newMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{Message: "missing required fields", Fields: fields}
}
