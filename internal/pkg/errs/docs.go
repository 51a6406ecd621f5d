// Package errs provides the error taxonomy of the grubdash service.
//
// Every error kind is exposed as a sentinel (e.g. ErrMissingField) so callers
// can classify failures with errors.Is, and most kinds have a struct type that
// carries the details needed to render a client-facing message:
//   - FieldError: a record field failed a presence or type rule
//   - LineItemError: an element of a nested sequence failed its rule
//   - IDMismatchError: the submitted id differs from the route id
//   - RuleViolationError: a lifecycle rule rejected the operation
//   - ObjectNotFoundError: no record exists under the requested identity
//   - ValueIsRequiredError / ValueIsInvalidError: programming-level argument checks
//
// Each struct follows the same pattern: constructor functions, an Error()
// method and an Unwrap() method returning the sentinel of its kind.
package errs
