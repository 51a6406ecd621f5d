package errs

import "fmt"

// IDMismatchError is returned when an update carries an id that differs from
// the identity addressed by the route.
type IDMismatchError struct {
	Resource string
	ID       string
	RouteID  string
}

func NewIDMismatchError(resource, id, routeID string) *IDMismatchError {
	return &IDMismatchError{Resource: resource, ID: id, RouteID: routeID}
}

func (e *IDMismatchError) Error() string {
	return fmt.Sprintf("%s id does not match route id. %s: %s, Route: %s",
		e.Resource, e.Resource, sanitize(e.ID), sanitize(e.RouteID))
}

func (e *IDMismatchError) Unwrap() error {
	return ErrIDMismatch
}

// RuleViolationError is returned when a lifecycle rule rejects an operation.
// Kind is the sentinel of the violated rule, Message the client-facing text.
type RuleViolationError struct {
	Kind    error
	Message string
}

func NewRuleViolationError(kind error, message string) *RuleViolationError {
	return &RuleViolationError{Kind: kind, Message: message}
}

func (e *RuleViolationError) Error() string {
	return e.Message
}

func (e *RuleViolationError) Unwrap() error {
	return e.Kind
}
