package kernel

import (
	"fmt"
	"strconv"

	"grubdash/internal/pkg/errs"
)

// ErrIDIsNotAssigned is returned when validating the zero ID.
var ErrIDIsNotAssigned = errs.NewValueIsRequiredError("ID must be assigned by a Sequence or parsed with ParseID")

// ID identifies a record within its collection. The zero value means
// "not assigned yet"; valid IDs start at 1.
//
// On the wire an ID is rendered as its decimal string ("1", "2", ...).
type ID struct {
	value uint64
}

// NewID wraps a raw identity value. Zero yields an unassigned ID.
func NewID(value uint64) ID {
	return ID{value: value}
}

// ParseID parses the decimal string representation of an ID. Only the
// canonical form is accepted, so "07" and "+7" are rejected.
//
// Example:
//
//	id, err := kernel.ParseID(ctx.Param("dishId"))
//	if err != nil {
//	    // no record can exist under this id
//	}
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a decimal identity", s))
	}
	if v == 0 || strconv.FormatUint(v, 10) != s {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a valid identity", s))
	}
	return ID{value: v}, nil
}

// Validate reports ErrIDIsNotAssigned for the zero ID.
func (id ID) Validate() error {
	if id.IsZero() {
		return ErrIDIsNotAssigned
	}
	return nil
}

func (id ID) IsZero() bool {
	return id.value == 0
}

func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Less orders IDs by creation.
func (id ID) Less(other ID) bool {
	return id.value < other.value
}

func (id ID) Uint64() uint64 {
	return id.value
}

func (id ID) String() string {
	return strconv.FormatUint(id.value, 10)
}
