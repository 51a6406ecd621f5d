package order_test

import (
	"testing"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/domain/validation"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLines() []order.LineItem {
	return []order.LineItem{{DishID: "1", Quantity: 2}}
}

func validRecord() validation.Record {
	return validation.Record{
		"deliverTo":    "221B Baker Street",
		"mobileNumber": "(555) 555-0100",
		"status":       "pending",
		"dishes": []any{
			map[string]any{"id": "1", "name": "Bagel", "price": float64(6), "quantity": float64(2)},
		},
	}
}

func restored(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewID(7), "221B Baker Street", "555", status, validLines())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending order", func(t *testing.T) {
		o, err := order.NewOrder("221B", "555", validLines())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsZero())
		assert.Equal(t, "221B", o.DeliverTo())
		assert.Equal(t, "555", o.MobileNumber())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, validLines(), o.Lines())
	})

	t.Run("should join all constructor errors", func(t *testing.T) {
		o, err := order.NewOrder("", "", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "deliverTo")
		assert.Contains(t, err.Error(), "mobileNumber")
		assert.Contains(t, err.Error(), "dishes")
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		_, err := order.NewOrder("221B", "555", []order.LineItem{{DishID: "1", Quantity: 0}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("lines are copied", func(t *testing.T) {
		lines := validLines()
		o, err := order.NewOrder("221B", "555", lines)
		require.NoError(t, err)

		lines[0].Quantity = 99
		o.Lines()[0].Quantity = 42

		assert.Equal(t, 2, o.Lines()[0].Quantity)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep identity and status", func(t *testing.T) {
		o := restored(t, order.OutForDelivery)

		assert.Equal(t, "7", o.ID().String())
		assert.Equal(t, order.OutForDelivery, o.Status())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewID(1), "221B", "555", order.Status("lost"), validLines())

		require.ErrorIs(t, err, errs.ErrInvalidStatus)
	})
}

func TestOrder_Apply(t *testing.T) {
	t.Run("should merge provided fields", func(t *testing.T) {
		o := restored(t, order.Pending)
		status := order.Preparing
		mobile := "555-0199"

		require.NoError(t, o.Apply(order.Patch{Status: &status, MobileNumber: &mobile}))

		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, "555-0199", o.MobileNumber())
		assert.Equal(t, "221B Baker Street", o.DeliverTo())
		assert.Equal(t, validLines(), o.Lines())
		assert.Equal(t, "7", o.ID().String())
	})

	t.Run("delivered order is immutable", func(t *testing.T) {
		o := restored(t, order.Delivered)
		deliverTo := "elsewhere"

		err := o.Apply(order.Patch{DeliverTo: &deliverTo})

		require.ErrorIs(t, err, errs.ErrImmutableOrder)
		assert.Equal(t, "221B Baker Street", o.DeliverTo())
	})

	t.Run("should leave order unchanged on error", func(t *testing.T) {
		o := restored(t, order.Pending)
		deliverTo := "elsewhere"
		status := order.Status("lost")

		err := o.Apply(order.Patch{DeliverTo: &deliverTo, Status: &status})

		require.ErrorIs(t, err, errs.ErrInvalidStatus)
		assert.Equal(t, "221B Baker Street", o.DeliverTo())
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_ValidateDelete(t *testing.T) {
	require.NoError(t, restored(t, order.Pending).ValidateDelete())
	require.ErrorIs(t, restored(t, order.Preparing).ValidateDelete(), errs.ErrOrderNotDeletable)
}

func TestValidateRecord(t *testing.T) {
	t.Run("should accept a valid record whatever its status", func(t *testing.T) {
		record := validRecord()
		record["status"] = "delivered"

		require.NoError(t, order.ValidateRecord(record))
	})

	t.Run("should report an empty dishes sequence", func(t *testing.T) {
		record := validRecord()
		record["dishes"] = []any{}

		require.ErrorIs(t, order.ValidateRecord(record), errs.ErrEmptySequence)
	})

	t.Run("should report the index of the first bad line", func(t *testing.T) {
		record := validRecord()
		record["dishes"] = []any{
			map[string]any{"quantity": float64(1)},
			map[string]any{"quantity": float64(1)},
			map[string]any{"quantity": float64(0)},
			map[string]any{"quantity": "3"},
		}

		err := order.ValidateRecord(record)

		var lineErr *errs.LineItemError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, 2, lineErr.Index)
		assert.Contains(t, err.Error(), "Dish 2 ")
		assert.NotContains(t, err.Error(), "Dish 3")
	})
}

func TestLinesFromRecord(t *testing.T) {
	t.Run("should read id and quantity", func(t *testing.T) {
		lines := order.LinesFromRecord(validRecord())

		require.Len(t, lines, 1)
		assert.Equal(t, "1", lines[0].DishID)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, map[string]any{"id": "1", "name": "Bagel", "price": float64(6), "quantity": float64(2)}, lines[0].Members())
	})

	t.Run("should keep line item members as submitted", func(t *testing.T) {
		record := validRecord()
		element := map[string]any{"id": "1", "name": "Bagel", "price": 6.5, "quantity": float64(2), "note": "extra"}
		record["dishes"] = []any{element}

		o, err := order.NewOrder("221B", "555", order.LinesFromRecord(record))

		require.NoError(t, err)
		members := o.Lines()[0].Members()
		assert.Equal(t, element, members)

		members["note"] = "changed"
		element["note"] = "changed too"
		assert.Equal(t, "extra", o.Lines()[0].Members()["note"])
	})
}

func TestOrder_PatchFromRecord(t *testing.T) {
	t.Run("should build a patch", func(t *testing.T) {
		o := restored(t, order.Pending)
		record := validRecord()
		record["id"] = "7"
		record["status"] = "out-for-delivery"

		p, err := o.PatchFromRecord("7", record)

		require.NoError(t, err)
		require.NotNil(t, p.Status)
		assert.Equal(t, order.OutForDelivery, *p.Status)
		require.NoError(t, o.Apply(p))
		assert.Equal(t, order.OutForDelivery, o.Status())
	})

	testCases := []struct {
		name    string
		current order.Status
		mutate  func(validation.Record)
		kind    error
	}{
		{
			name:    "id mismatch comes first",
			current: order.Delivered,
			mutate:  func(r validation.Record) { r["id"] = "8"; delete(r, "status") },
			kind:    errs.ErrIDMismatch,
		},
		{
			name:    "delivered order is immutable whatever is submitted",
			current: order.Delivered,
			mutate:  func(r validation.Record) { delete(r, "deliverTo"); r["dishes"] = []any{} },
			kind:    errs.ErrImmutableOrder,
		},
		{
			name:    "field rules before status",
			current: order.Pending,
			mutate:  func(r validation.Record) { r["mobileNumber"] = ""; delete(r, "status") },
			kind:    errs.ErrEmptyField,
		},
		{
			name:    "line items before status",
			current: order.Pending,
			mutate: func(r validation.Record) {
				r["dishes"] = []any{map[string]any{"quantity": float64(-1)}}
				r["status"] = "lost"
			},
			kind: errs.ErrInvalidLineQuantity,
		},
		{
			name:    "missing status",
			current: order.Preparing,
			mutate:  func(r validation.Record) { delete(r, "status") },
			kind:    errs.ErrMissingStatus,
		},
		{
			name:    "empty status",
			current: order.Preparing,
			mutate:  func(r validation.Record) { r["status"] = "" },
			kind:    errs.ErrMissingStatus,
		},
		{
			name:    "invalid status",
			current: order.Preparing,
			mutate:  func(r validation.Record) { r["status"] = "invalid" },
			kind:    errs.ErrInvalidStatus,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := restored(t, tc.current)
			record := validRecord()
			tc.mutate(record)

			_, err := o.PatchFromRecord("7", record)

			require.ErrorIs(t, err, tc.kind)
		})
	}
}

func TestLineItem_Members(t *testing.T) {
	t.Run("should fill id and quantity when not submitted", func(t *testing.T) {
		line := order.LineItem{DishID: "4", Quantity: 3}

		assert.Equal(t, map[string]any{"id": "4", "quantity": 3}, line.Members())
	})

	t.Run("should keep a submitted non-integer price", func(t *testing.T) {
		line := order.LineItemFromRecord(validation.Record{"price": "6.50", "quantity": float64(1)})

		assert.Empty(t, line.DishID)
		assert.Equal(t, 1, line.Quantity)
		assert.Equal(t, map[string]any{"price": "6.50", "quantity": float64(1)}, line.Members())
	})
}
