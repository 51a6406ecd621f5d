package errs

import "fmt"

// FieldError reports the first field of a record that failed its rule.
// Kind is one of ErrMissingField, ErrEmptyField, ErrInvalidNumber or ErrEmptySequence.
type FieldError struct {
	Field   string
	Kind    error
	Message string
}

func NewMissingFieldError(subject, field string) *FieldError {
	return &FieldError{
		Field:   field,
		Kind:    ErrMissingField,
		Message: fmt.Sprintf("%s must include a %s", subject, field),
	}
}

func NewEmptyFieldError(subject, field string) *FieldError {
	return &FieldError{
		Field:   field,
		Kind:    ErrEmptyField,
		Message: fmt.Sprintf("%s must include a %s", subject, field),
	}
}

func NewInvalidNumberError(subject, field string) *FieldError {
	return &FieldError{
		Field:   field,
		Kind:    ErrInvalidNumber,
		Message: fmt.Sprintf("%s must have a %s that is an integer greater than 0", subject, field),
	}
}

// NewMissingSequenceError is the MissingField variant for sequence fields,
// worded the same way as an empty sequence. Item names one element ("dish").
func NewMissingSequenceError(subject, field, item string) *FieldError {
	return &FieldError{
		Field:   field,
		Kind:    ErrMissingField,
		Message: fmt.Sprintf("%s must include at least one %s", subject, item),
	}
}

func NewEmptySequenceError(subject, field, item string) *FieldError {
	return &FieldError{
		Field:   field,
		Kind:    ErrEmptySequence,
		Message: fmt.Sprintf("%s must include at least one %s", subject, item),
	}
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// LineItemError reports the first element of a nested sequence whose Field
// failed its rule. Index is zero-based.
type LineItemError struct {
	Index   int
	Field   string
	Message string
}

func NewLineItemError(subject string, index int, field string) *LineItemError {
	return &LineItemError{
		Index:   index,
		Field:   field,
		Message: fmt.Sprintf("%s %d must have a %s that is an integer greater than 0", subject, index, field),
	}
}

func (e *LineItemError) Error() string {
	return e.Message
}

func (e *LineItemError) Unwrap() error {
	return ErrInvalidLineQuantity
}
