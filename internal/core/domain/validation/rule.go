package validation

// Kind is the type of value a rule requires.
type Kind int

const (
	// RequiredText requires a present, non-empty string.
	RequiredText Kind = iota + 1

	// RequiredPositiveInteger requires a present number holding an integer
	// greater than zero. Numerals encoded as text are rejected.
	RequiredPositiveInteger

	// RequiredNonEmptySequence requires a present sequence with at least one element.
	RequiredNonEmptySequence
)

func (k Kind) String() string {
	switch k {
	case RequiredText:
		return "required-text"
	case RequiredPositiveInteger:
		return "required-positive-integer"
	case RequiredNonEmptySequence:
		return "required-nonempty-sequence"
	default:
		return "unknown"
	}
}

// Rule binds a field name to the kind of value it must hold.
// Item names a single element of a sequence field ("dish") and is only
// used in messages of RequiredNonEmptySequence rules.
type Rule struct {
	Name string
	Kind Kind
	Item string
}

// Ruleset is an ordered list of rules for one record type.
// Subject labels the record in messages ("Dish", "Order").
type Ruleset struct {
	Subject string
	Rules   []Rule
}

// LineRule describes the per-element check of a nested sequence.
// Subject labels one element in messages, Field is the integer field checked.
type LineRule struct {
	Subject string
	Field   string
}
