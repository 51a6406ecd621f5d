package errs

import (
	"errors"
	"strings"
)

var (
	ErrValueIsRequired = errors.New("value is required")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrObjectNotFound  = errors.New("object not found")

	ErrMissingField        = errors.New("missing field")
	ErrEmptyField          = errors.New("empty field")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrEmptySequence       = errors.New("empty sequence")
	ErrInvalidLineQuantity = errors.New("invalid line quantity")
	ErrIDMismatch          = errors.New("id mismatch")

	ErrMissingStatus     = errors.New("missing status")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrImmutableOrder    = errors.New("immutable order")
	ErrOrderNotDeletable = errors.New("order not deletable")
)

// clientErrors lists the kinds caused by the submitted input. They are
// reported to the caller with a 400 status.
var clientErrors = []error{
	ErrMissingField,
	ErrEmptyField,
	ErrInvalidNumber,
	ErrEmptySequence,
	ErrInvalidLineQuantity,
	ErrIDMismatch,
	ErrMissingStatus,
	ErrInvalidStatus,
	ErrImmutableOrder,
	ErrOrderNotDeletable,
}

// IsClientError reports whether err belongs to one of the input validation
// or lifecycle kinds.
func IsClientError(err error) bool {
	for _, kind := range clientErrors {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
