package validation

import "grubdash/internal/pkg/errs"

// Step is a single check of a validation pipeline.
type Step func() error

// Run executes steps in order and returns the first error.
func Run(steps ...Step) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Fields returns a step validating record against rules.
func Fields(record Record, rules Ruleset) Step {
	return func() error {
		return Validate(record, rules)
	}
}

// Lines returns a step validating the elements of record's sequence field.
// A field that is not a sequence is left to the Fields step.
func Lines(record Record, field string, rule LineRule) Step {
	return func() error {
		return ValidateLines(record.Sequence(field), rule)
	}
}

// MatchingID returns a step rejecting a record whose non-empty id differs
// from routeID. Subject labels the record in the message.
func MatchingID(subject, routeID string, record Record) Step {
	return func() error {
		id, ok := record.Identity()
		if ok && id != routeID {
			return errs.NewIDMismatchError(subject, id, routeID)
		}
		return nil
	}
}
