package content

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrNotFound means the identifier resolved to no record.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidID means the identifier is not a valid ObjectID hex string.
	// Surfaced as a server error, matching how the store itself reacts to
	// a malformed id.
	ErrInvalidID = errors.New("invalid record id")
)

// IsValidationError reports whether err came from DTO validation and
// should map to a 400 rather than a 500.
func IsValidationError(err error) bool {
	var errs validation.Errors
	return errors.As(err, &errs)
}
