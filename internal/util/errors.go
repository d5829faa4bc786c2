package util

import "errors"

var (
	ErrNotConfigured = errors.New("service not configured")
	ErrNotFound      = errors.New("resource not found")
)

// ValidationError signals a domain-rule violation; handlers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
