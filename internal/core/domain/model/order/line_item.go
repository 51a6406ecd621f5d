package order

import (
	"fmt"
	"maps"

	"grubdash/internal/core/domain/validation"
	"grubdash/internal/pkg/errs"
)

// LineItem is one dish of an order. DishID and Quantity are read from the
// submitted element; Attributes holds every member of that element as it
// was submitted and is never modified after construction.
type LineItem struct {
	DishID     string
	Quantity   int
	Attributes map[string]any
}

// LineItemFromRecord reads one element of a validated dishes sequence.
func LineItemFromRecord(record validation.Record) LineItem {
	id, _ := record.Identity()
	return LineItem{
		DishID:     id,
		Quantity:   record.Int("quantity"),
		Attributes: maps.Clone(map[string]any(record)),
	}
}

// Validate checks the quantity of the line item.
func (l LineItem) Validate() error {
	if l.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", l.Quantity))
	}
	return nil
}

// Members returns a copy of the submitted members. id and quantity are
// filled from DishID and Quantity when the element did not carry them.
func (l LineItem) Members() map[string]any {
	members := make(map[string]any, len(l.Attributes)+2)
	maps.Copy(members, l.Attributes)
	if _, ok := members["id"]; !ok && l.DishID != "" {
		members["id"] = l.DishID
	}
	if _, ok := members["quantity"]; !ok {
		members["quantity"] = l.Quantity
	}
	return members
}

// LinesFromRecord reads the dishes sequence of a validated order record.
func LinesFromRecord(record validation.Record) []LineItem {
	sequence := record.Sequence("dishes")
	lines := make([]LineItem, 0, len(sequence))
	for _, element := range sequence {
		r, _ := validation.AsRecord(element)
		lines = append(lines, LineItemFromRecord(r))
	}
	return lines
}
