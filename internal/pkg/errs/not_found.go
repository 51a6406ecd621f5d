package errs

import "fmt"

// ObjectNotFoundError is returned when no record is stored under the requested identity.
// Resource is the human label of the collection ("Dish", "Order").
type ObjectNotFoundError struct {
	Resource string
	ID       any
}

func NewObjectNotFoundError(resource string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{Resource: resource, ID: id}
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist: %s", e.Resource, sanitize(fmt.Sprint(e.ID)))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}
