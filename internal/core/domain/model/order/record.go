package order

import (
	"grubdash/internal/core/domain/validation"
)

// Subject labels orders in client-facing messages.
const Subject = "Order"

// Rules lists the fields of a submitted order record, in the order they are checked.
var Rules = validation.Ruleset{
	Subject: Subject,
	Rules: []validation.Rule{
		{Name: "deliverTo", Kind: validation.RequiredText},
		{Name: "mobileNumber", Kind: validation.RequiredText},
		{Name: "dishes", Kind: validation.RequiredNonEmptySequence, Item: "dish"},
	},
}

// LineRule is the check applied to every element of the dishes sequence.
var LineRule = validation.LineRule{Subject: "Dish", Field: "quantity"}

// Patch is a partial order. Nil fields are not changed by Apply.
type Patch struct {
	DeliverTo    *string
	MobileNumber *string
	Status       *Status
	Lines        []LineItem
}

// ValidateRecord checks the fields of a submitted order record, then its
// line items.
func ValidateRecord(record validation.Record) error {
	return validation.Run(
		validation.Fields(record, Rules),
		validation.Lines(record, "dishes", LineRule),
	)
}

// PatchFromRecord validates a record submitted to update this order, which
// is stored under routeID. Checks run in this order and stop at the first
// failure: id match, delivered orders are frozen, field rules, line items,
// then the mandatory status.
func (o *Order) PatchFromRecord(routeID string, record validation.Record) (Patch, error) {
	var status Status
	if err := validation.Run(
		validation.MatchingID(Subject, routeID, record),
		o.status.ValidateChange,
		func() error { return ValidateRecord(record) },
		func() (err error) {
			status, err = ParseStatus(record["status"])
			return err
		},
	); err != nil {
		return Patch{}, err
	}

	p := Patch{
		Status: &status,
		Lines:  LinesFromRecord(record),
	}
	if record.Has("deliverTo") {
		deliverTo := record.Text("deliverTo")
		p.DeliverTo = &deliverTo
	}
	if record.Has("mobileNumber") {
		mobileNumber := record.Text("mobileNumber")
		p.MobileNumber = &mobileNumber
	}
	return p, nil
}
