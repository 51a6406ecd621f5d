package dish_test

import (
	"testing"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/validation"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() validation.Record {
	return validation.Record{
		"name":        "Falafel and tahini bagel",
		"description": "A warm bagel filled with falafel and tahini",
		"price":       float64(6),
		"image_url":   "https://images.example.com/bagel.jpg",
	}
}

func TestNewDish(t *testing.T) {
	t.Run("should create an unsaved dish", func(t *testing.T) {
		d, err := dish.NewDish("Bagel", "Warm bagel", 6, "bagel.jpg")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsZero())
		assert.Equal(t, "Bagel", d.Name())
		assert.Equal(t, "Warm bagel", d.Description())
		assert.Equal(t, 6, d.Price())
		assert.Equal(t, "bagel.jpg", d.ImageURL())
	})

	t.Run("should join all constructor errors", func(t *testing.T) {
		d, err := dish.NewDish("", "", 0, "")

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "description")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
		assert.Contains(t, err.Error(), "image_url")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var d dish.Dish
		require.ErrorIs(t, d.Validate(), dish.ErrDishIsNotConstructed)

		var nilDish *dish.Dish
		require.ErrorIs(t, nilDish.Validate(), dish.ErrDishIsNotConstructed)
	})
}

func TestRestoreDish(t *testing.T) {
	t.Run("should keep the identity", func(t *testing.T) {
		d, err := dish.RestoreDish(kernel.NewID(3), "Bagel", "Warm bagel", 6, "bagel.jpg")

		require.NoError(t, err)
		assert.Equal(t, "3", d.ID().String())
	})

	t.Run("should require an identity", func(t *testing.T) {
		_, err := dish.RestoreDish(kernel.ID{}, "Bagel", "Warm bagel", 6, "bagel.jpg")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDish_AssignID(t *testing.T) {
	d, err := dish.NewDish("Bagel", "Warm bagel", 6, "bagel.jpg")
	require.NoError(t, err)

	require.NoError(t, d.AssignID(kernel.NewID(1)))
	assert.Equal(t, "1", d.ID().String())

	err = d.AssignID(kernel.NewID(2))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "1", d.ID().String())
}

func TestDish_Apply(t *testing.T) {
	newDish := func(t *testing.T) *dish.Dish {
		d, err := dish.RestoreDish(kernel.NewID(1), "Bagel", "Warm bagel", 6, "bagel.jpg")
		require.NoError(t, err)
		return d
	}

	t.Run("should overwrite only provided fields", func(t *testing.T) {
		d := newDish(t)
		name := "Toasted bagel"

		require.NoError(t, d.Apply(dish.Patch{Name: &name}))

		assert.Equal(t, "Toasted bagel", d.Name())
		assert.Equal(t, "Warm bagel", d.Description())
		assert.Equal(t, 6, d.Price())
		assert.Equal(t, "bagel.jpg", d.ImageURL())
		assert.Equal(t, "1", d.ID().String())
	})

	t.Run("should leave dish unchanged on error", func(t *testing.T) {
		d := newDish(t)
		name, price := "Toasted bagel", -3

		err := d.Apply(dish.Patch{Name: &name, Price: &price})

		require.Error(t, err)
		assert.Equal(t, "Bagel", d.Name())
		assert.Equal(t, 6, d.Price())
	})

	t.Run("clone is independent", func(t *testing.T) {
		d := newDish(t)
		c := d.Clone()
		price := 9

		require.NoError(t, c.Apply(dish.Patch{Price: &price}))

		assert.Equal(t, 6, d.Price())
		assert.Equal(t, 9, c.Price())
	})
}

func TestPatchFromRecord(t *testing.T) {
	t.Run("should build a patch from a valid record", func(t *testing.T) {
		record := validRecord()
		record["id"] = "4"

		p, err := dish.PatchFromRecord("4", record)

		require.NoError(t, err)
		require.NotNil(t, p.Name)
		require.NotNil(t, p.Price)
		assert.Equal(t, "Falafel and tahini bagel", *p.Name)
		assert.Equal(t, 6, *p.Price)
	})

	t.Run("should reject a mismatching id", func(t *testing.T) {
		record := validRecord()
		record["id"] = "5"

		_, err := dish.PatchFromRecord("4", record)

		require.ErrorIs(t, err, errs.ErrIDMismatch)
		assert.Equal(t, "Dish id does not match route id. Dish: 5, Route: 4", err.Error())
	})

	t.Run("field rules are checked before the id", func(t *testing.T) {
		record := validRecord()
		record["id"] = "5"
		record["name"] = ""

		_, err := dish.PatchFromRecord("4", record)

		require.ErrorIs(t, err, errs.ErrEmptyField)
	})
}
