// internal/domain/errors.go
package domain

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Sentinel errors shared by all services. Adapters map them onto transport
// status codes; repositories translate storage errors into them.
var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateMail       = errors.New("mail already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrOTPMismatch         = errors.New("otp code mismatch")
	ErrOTPExpired          = errors.New("otp code expired")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
)

// ValidationError reports a missing or malformed input field. The caller must
// fix the request; nothing was persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validationf builds a ValidationError for the given field.
func Validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
