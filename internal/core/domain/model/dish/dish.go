package dish

import (
	"errors"
	"fmt"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

var (
	// ErrDishIsNotConstructed is returned when a Dish was not created through NewDish or RestoreDish.
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

	// ErrIDIsAlreadyAssigned is returned when AssignID is called on a stored dish.
	ErrIDIsAlreadyAssigned = errs.NewValueIsInvalidErrorWithCause("id", errors.New("dish identity is already assigned"))
)

// Dish is a menu entry. Fields are private so every change goes through a
// validated setter; the zero value is not a valid Dish.
type Dish struct {
	id          kernel.ID
	name        string
	description string
	price       int
	imageURL    string

	isConstructed bool
}

// NewDish creates a dish that has not been stored yet. Its identity is
// assigned by the repository on insert.
func NewDish(name, description string, price int, imageURL string) (*Dish, error) {
	d := &Dish{isConstructed: true}

	if err := errors.Join(
		d.setName(name),
		d.setDescription(description),
		d.setPrice(price),
		d.setImageURL(imageURL),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDish rebuilds a stored dish, e.g. from a database row.
func RestoreDish(id kernel.ID, name, description string, price int, imageURL string) (*Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDish(name, description, price, imageURL)
	if err != nil {
		return nil, err
	}

	d.id = id
	return d, nil
}

// Validate ensures the dish was built through a constructor.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) ID() kernel.ID {
	return d.id
}

func (d *Dish) Name() string {
	return d.name
}

func (d *Dish) Description() string {
	return d.description
}

// Price returns the price in whole currency units.
func (d *Dish) Price() int {
	return d.price
}

func (d *Dish) ImageURL() string {
	return d.imageURL
}

// AssignID sets the identity of a dish that has none yet.
func (d *Dish) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !d.id.IsZero() {
		return ErrIDIsAlreadyAssigned
	}
	d.id = id
	return nil
}

// Apply merges p over the dish. Fields left nil in p keep their value.
// On error the dish is left unchanged.
func (d *Dish) Apply(p Patch) error {
	next := d.Clone()

	if p.Name != nil {
		if err := next.setName(*p.Name); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := next.setDescription(*p.Description); err != nil {
			return err
		}
	}
	if p.Price != nil {
		if err := next.setPrice(*p.Price); err != nil {
			return err
		}
	}
	if p.ImageURL != nil {
		if err := next.setImageURL(*p.ImageURL); err != nil {
			return err
		}
	}

	*d = *next
	return nil
}

// Clone returns an independent copy of the dish.
func (d *Dish) Clone() *Dish {
	c := *d
	return &c
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dish) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	d.description = description
	return nil
}

func (d *Dish) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	d.price = price
	return nil
}

func (d *Dish) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError("image_url")
	}
	d.imageURL = imageURL
	return nil
}
