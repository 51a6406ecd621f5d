package dish

import (
	"grubdash/internal/core/domain/validation"
)

// Subject labels dishes in client-facing messages.
const Subject = "Dish"

// Rules lists the fields of a submitted dish record, in the order they are checked.
var Rules = validation.Ruleset{
	Subject: Subject,
	Rules: []validation.Rule{
		{Name: "name", Kind: validation.RequiredText},
		{Name: "description", Kind: validation.RequiredText},
		{Name: "price", Kind: validation.RequiredPositiveInteger},
		{Name: "image_url", Kind: validation.RequiredText},
	},
}

// Patch is a partial dish. Nil fields are not changed by Apply.
type Patch struct {
	Name        *string
	Description *string
	Price       *int
	ImageURL    *string
}

// PatchFromRecord validates a record submitted to update the dish stored
// under routeID. Field rules are checked first, then the id match.
func PatchFromRecord(routeID string, record validation.Record) (Patch, error) {
	if err := validation.Run(
		validation.Fields(record, Rules),
		validation.MatchingID(Subject, routeID, record),
	); err != nil {
		return Patch{}, err
	}

	var p Patch
	if record.Has("name") {
		p.Name = ptr(record.Text("name"))
	}
	if record.Has("description") {
		p.Description = ptr(record.Text("description"))
	}
	if record.Has("price") {
		p.Price = ptr(record.Int("price"))
	}
	if record.Has("image_url") {
		p.ImageURL = ptr(record.Text("image_url"))
	}
	return p, nil
}

func ptr[T any](v T) *T {
	return &v
}
