package order

import (
	"errors"
	"slices"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIDIsAlreadyAssigned is returned when AssignID is called on a stored order.
	ErrIDIsAlreadyAssigned = errs.NewValueIsInvalidErrorWithCause("id", errors.New("order identity is already assigned"))
)

// Order is the aggregate root of a customer order.
//
// Order follows these invariants:
//   - deliverTo and mobileNumber are non-empty
//   - there is at least one line item and every quantity is positive
//   - status is one of the four known statuses
//   - once delivered, nothing changes
type Order struct {
	id           kernel.ID
	deliverTo    string
	mobileNumber string
	status       Status
	lines        []LineItem

	isConstructed bool
}

// NewOrder creates an unsaved pending order. Its identity is assigned by the
// repository on insert.
func NewOrder(deliverTo, mobileNumber string, lines []LineItem) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setDeliverTo(deliverTo),
		o.setMobileNumber(mobileNumber),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a stored order in any status, e.g. from a database row.
func RestoreOrder(id kernel.ID, deliverTo, mobileNumber string, status Status, lines []LineItem) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	o, err := NewOrder(deliverTo, mobileNumber, lines)
	if err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) DeliverTo() string {
	return o.deliverTo
}

func (o *Order) MobileNumber() string {
	return o.mobileNumber
}

func (o *Order) Status() Status {
	return o.status
}

// Lines returns a copy of the line items in submission order.
func (o *Order) Lines() []LineItem {
	return slices.Clone(o.lines)
}

// AssignID sets the identity of an order that has none yet.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return ErrIDIsAlreadyAssigned
	}
	o.id = id
	return nil
}

// Apply merges p over the order. Nil fields of p keep their value. A
// delivered order rejects every patch with errs.ErrImmutableOrder.
// On error the order is left unchanged.
func (o *Order) Apply(p Patch) error {
	if err := o.status.ValidateChange(); err != nil {
		return err
	}

	next := o.Clone()

	if p.DeliverTo != nil {
		if err := next.setDeliverTo(*p.DeliverTo); err != nil {
			return err
		}
	}
	if p.MobileNumber != nil {
		if err := next.setMobileNumber(*p.MobileNumber); err != nil {
			return err
		}
	}
	if p.Lines != nil {
		if err := next.setLines(p.Lines); err != nil {
			return err
		}
	}
	if p.Status != nil {
		status, err := next.status.TransitionTo(*p.Status)
		if err != nil {
			return err
		}
		next.status = status
	}

	*o = *next
	return nil
}

// ValidateDelete reports whether the order may be removed.
func (o *Order) ValidateDelete() error {
	return o.status.ValidateDelete()
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	c := *o
	c.lines = slices.Clone(o.lines)
	return &c
}

func (o *Order) setDeliverTo(deliverTo string) error {
	if deliverTo == "" {
		return errs.NewValueIsRequiredError("deliverTo")
	}
	o.deliverTo = deliverTo
	return nil
}

func (o *Order) setMobileNumber(mobileNumber string) error {
	if mobileNumber == "" {
		return errs.NewValueIsRequiredError("mobileNumber")
	}
	o.mobileNumber = mobileNumber
	return nil
}

func (o *Order) setLines(lines []LineItem) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("dishes")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = slices.Clone(lines)
	return nil
}
