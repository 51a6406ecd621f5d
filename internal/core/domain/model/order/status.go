package order

import (
	"grubdash/internal/pkg/errs"
)

// Status is the lifecycle state of an order. pending, preparing and
// out-for-delivery may move to any status, in any order. delivered is
// terminal: once reached, the order is frozen.
type Status string

const (
	// Pending is the initial status of every order. Only pending orders may be deleted.
	Pending Status = "pending"

	// Preparing means the kitchen is working on the order.
	Preparing Status = "preparing"

	// OutForDelivery means a courier has the order.
	OutForDelivery Status = "out-for-delivery"

	// Delivered is terminal.
	Delivered Status = "delivered"
)

const statusMessage = "Order must have a status of pending, preparing, out-for-delivery, delivered"

// Statuses returns all known statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Preparing, OutForDelivery, Delivered}
}

// ParseStatus reads a submitted status value. A missing, null or empty value
// fails with errs.ErrMissingStatus; anything that is not one of the four
// statuses fails with errs.ErrInvalidStatus.
func ParseStatus(v any) (Status, error) {
	if v == nil {
		return "", errs.NewRuleViolationError(errs.ErrMissingStatus, statusMessage)
	}
	s, ok := v.(string)
	if !ok {
		return "", errs.NewRuleViolationError(errs.ErrInvalidStatus, statusMessage)
	}
	if s == "" {
		return "", errs.NewRuleViolationError(errs.ErrMissingStatus, statusMessage)
	}

	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that s is one of the four known statuses.
func (s Status) Validate() error {
	switch s {
	case Pending, Preparing, OutForDelivery, Delivered:
		return nil
	default:
		return errs.NewRuleViolationError(errs.ErrInvalidStatus, statusMessage)
	}
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no change is allowed from s.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateChange fails with errs.ErrImmutableOrder when s is terminal.
func (s Status) ValidateChange() error {
	if s.IsTerminal() {
		return errs.NewRuleViolationError(errs.ErrImmutableOrder, "A delivered order cannot be changed")
	}
	return nil
}

// ValidateDelete fails with errs.ErrOrderNotDeletable unless s is Pending.
func (s Status) ValidateDelete() error {
	if s != Pending {
		return errs.NewRuleViolationError(errs.ErrOrderNotDeletable, "An order cannot be deleted unless it is pending")
	}
	return nil
}

// TransitionTo returns next if the order may move from s to next.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.ValidateChange(); err != nil {
		return s, err
	}
	if err := next.Validate(); err != nil {
		return s, err
	}
	return next, nil
}
