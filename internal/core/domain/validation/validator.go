package validation

import "grubdash/internal/pkg/errs"

// Validate checks record against rules in order and returns the first failure
// as an *errs.FieldError. It has no side effects.
func Validate(record Record, rules Ruleset) error {
	for _, rule := range rules.Rules {
		if err := check(record, rules.Subject, rule); err != nil {
			return err
		}
	}
	return nil
}

func check(record Record, subject string, rule Rule) error {
	value, present := record[rule.Name]
	present = present && value != nil

	switch rule.Kind {
	case RequiredText:
		if !present {
			return errs.NewMissingFieldError(subject, rule.Name)
		}
		if s, ok := value.(string); !ok || s == "" {
			return errs.NewEmptyFieldError(subject, rule.Name)
		}
	case RequiredPositiveInteger:
		if !present {
			return errs.NewMissingFieldError(subject, rule.Name)
		}
		if _, ok := PositiveInteger(value); !ok {
			return errs.NewInvalidNumberError(subject, rule.Name)
		}
	case RequiredNonEmptySequence:
		seq, ok := value.([]any)
		if !present || !ok {
			return errs.NewMissingSequenceError(subject, rule.Name, rule.item())
		}
		if len(seq) == 0 {
			return errs.NewEmptySequenceError(subject, rule.Name, rule.item())
		}
	default:
		return errs.NewValueIsInvalidError("rule kind of " + rule.Name)
	}
	return nil
}

func (r Rule) item() string {
	if r.Item != "" {
		return r.Item
	}
	return r.Name
}

// ValidateLines checks rule.Field of every element of sequence and returns an
// *errs.LineItemError for the first element that is not an object or whose
// field is not a positive integer.
func ValidateLines(sequence []any, rule LineRule) error {
	for i, element := range sequence {
		line, ok := AsRecord(element)
		if !ok {
			return errs.NewLineItemError(rule.Subject, i, rule.Field)
		}
		if _, ok = PositiveInteger(line[rule.Field]); !ok {
			return errs.NewLineItemError(rule.Subject, i, rule.Field)
		}
	}
	return nil
}
